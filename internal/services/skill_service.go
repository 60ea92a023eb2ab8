package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devport/portfolio-api/internal/db"
	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
)

type SkillService struct {
	col *mongo.Collection
}

func NewSkillService(database *mongo.Database) *SkillService {
	return &SkillService{col: database.Collection(db.ColSkills)}
}

// List returns skills sorted by category then display order, optionally
// filtered to a single category.
func (s *SkillService) List(ctx context.Context, category string) ([]models.Skill, error) {
	query := bson.M{}
	if category != "" {
		query["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}})
	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to list skills")
	}
	skills := make([]models.Skill, 0)
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to decode skills")
	}
	return skills, nil
}

// GroupByCategory buckets a skill list by category, preserving order within
// each bucket. Unfiltered listings return this shape.
func GroupByCategory(skills []models.Skill) map[string][]models.Skill {
	grouped := make(map[string][]models.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped
}

func (s *SkillService) Get(ctx context.Context, id string) (*models.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.InvalidID(id)
	}

	var skill models.Skill
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&skill); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("skill")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to load skill")
	}
	return &skill, nil
}

// Create persists a skill. A duplicate name trips the unique index and
// surfaces as CodeDuplicateKey.
func (s *SkillService) Create(ctx context.Context, skill *models.Skill) error {
	skill.ID = primitive.NewObjectID()
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if _, err := s.col.InsertOne(ctx, skill); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.New(errs.CodeDuplicateKey, "skill name already exists")
		}
		return errs.Wrap(err, errs.CodeInternal, "failed to create skill")
	}
	return nil
}

func (s *SkillService) Update(ctx context.Context, id string, set bson.M) (*models.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.InvalidID(id)
	}
	set["updated_at"] = time.Now()

	var skill models.Skill
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("skill")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.New(errs.CodeDuplicateKey, "skill name already exists")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to update skill")
	}
	return &skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.InvalidID(id)
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.Wrap(err, errs.CodeInternal, "failed to delete skill")
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("skill")
	}
	return nil
}
