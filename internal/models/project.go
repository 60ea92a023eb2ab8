package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project publication statuses. Public listings default to published.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Project is a portfolio entry. Order ascending then recency descending is
// the canonical sort everywhere projects are listed.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tech        []string           `bson:"tech" json:"tech"`
	LiveURL     string             `bson:"live_url,omitempty" json:"liveUrl,omitempty"`
	RepoURL     string             `bson:"repo_url,omitempty" json:"repoUrl,omitempty"`
	Images      []string           `bson:"images" json:"images"`
	Featured    bool               `bson:"featured" json:"featured"`
	Order       int                `bson:"order" json:"order"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
