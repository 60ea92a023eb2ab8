package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is an anonymous public submission. The originating IP is
// captured at creation time for audit purposes. Fetching a single message
// flips Read to true as a side effect.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	Replied   bool               `bson:"replied" json:"replied"`
	IPAddress string             `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
