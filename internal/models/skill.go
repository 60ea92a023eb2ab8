package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkillCategories is the fixed category enumeration.
var SkillCategories = []string{"Frontend", "Backend", "Database", "DevOps", "Tools", "Other"}

// Skill names are globally unique (unique index on name). Proficiency is
// bounded to [0,100].
type Skill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Proficiency int                `bson:"proficiency" json:"proficiency"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
