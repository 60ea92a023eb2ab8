// Package db owns the MongoDB connection lifecycle and index bootstrap.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the services.
const (
	ColUsers    = "users"
	ColProjects = "projects"
	ColSkills   = "skills"
	ColAbout    = "about"
	ColContact  = "contact_messages"
)

// Mongo wraps the driver client and the selected database. It is constructed
// once at startup and closed on shutdown; there is no package-level state.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB, verifies the connection with a ping, and returns a
// handle bound to the given database.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Database returns the selected database handle.
func (m *Mongo) Database() *mongo.Database { return m.db }

// Collection returns a collection in the selected database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the services rely on: unique user email,
// unique skill name, unique about singleton key, project sort/search indexes,
// and contact message recency/read indexes.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColSkills: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}}},
		},
		ColAbout: {
			{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColProjects: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "order", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "tech", Value: "text"},
			}},
		},
		ColContact: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "read", Value: 1}}},
		},
	}

	for col, models := range specs {
		if _, err := m.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", col, err)
		}
	}
	return nil
}
