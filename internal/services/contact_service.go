package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devport/portfolio-api/internal/db"
	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
)

type ContactService struct {
	col *mongo.Collection
}

func NewContactService(database *mongo.Database) *ContactService {
	return &ContactService{col: database.Collection(db.ColContact)}
}

// Create stores an anonymous submission, capturing the caller's address.
func (s *ContactService) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = primitive.NewObjectID()
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
	msg.Read = false
	msg.Replied = false
	msg.CreatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, msg); err != nil {
		return errs.Wrap(err, errs.CodeInternal, "failed to save message")
	}
	return nil
}

// List returns one page of messages, newest first, optionally filtered by
// read state.
func (s *ContactService) List(ctx context.Context, read *bool, page, limit int) ([]models.ContactMessage, int64, error) {
	query := bson.M{}
	if read != nil {
		query["read"] = *read
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errs.Wrap(err, errs.CodeInternal, "failed to list messages")
	}
	messages := make([]models.ContactMessage, 0, limit)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, errs.Wrap(err, errs.CodeInternal, "failed to decode messages")
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errs.Wrap(err, errs.CodeInternal, "failed to count messages")
	}
	return messages, total, nil
}

// Get fetches one message and flips its read flag as a side effect when it
// was previously unread.
func (s *ContactService) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.InvalidID(id)
	}

	var msg models.ContactMessage
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"read": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&msg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("message")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to load message")
	}
	return &msg, nil
}

// MarkRead explicitly flips the read flag.
func (s *ContactService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.Get(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.InvalidID(id)
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.Wrap(err, errs.CodeInternal, "failed to delete message")
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("message")
	}
	return nil
}
