package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devport/portfolio-api/internal/db"
	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
)

// Defaults seeded when the singleton is first read.
const (
	defaultAboutTitle = "About Me"
	defaultAboutBio   = "Welcome to my portfolio! Update this section with your information."
	defaultShortBio   = "Full-stack developer passionate about building great web applications."
)

type AboutService struct {
	col *mongo.Collection
}

func NewAboutService(database *mongo.Database) *AboutService {
	return &AboutService{col: database.Collection(db.ColAbout)}
}

// Get returns the singleton about document, lazily creating the default one
// when absent. The upsert targets the well-known key so two concurrent first
// reads cannot create two documents.
func (s *AboutService) Get(ctx context.Context) (*models.About, error) {
	now := time.Now()
	var about models.About
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"key": models.AboutKey},
		bson.M{"$setOnInsert": models.About{
			Key:              models.AboutKey,
			Title:            defaultAboutTitle,
			ShowProjectIntro: true,
			Bio:              defaultAboutBio,
			ShortBio:         defaultShortBio,
			TechStack:        []string{},
			Badges:           []string{},
			Experience:       []models.ExperienceEntry{},
			Education:        []models.EducationEntry{},
			CreatedAt:        now,
			UpdatedAt:        now,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&about)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to load about document")
	}
	return &about, nil
}

// Update applies a partial update to the singleton. Array-valued sub-fields
// in set must already be sanitized; they replace the stored arrays wholesale.
func (s *AboutService) Update(ctx context.Context, set bson.M) (*models.About, error) {
	set["updated_at"] = time.Now()

	var about models.About
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"key": models.AboutKey},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"key":        models.AboutKey,
				"created_at": time.Now(),
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&about)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to update about document")
	}
	return &about, nil
}

// AddExperience appends one entry to the experience list. The singleton must
// already exist.
func (s *AboutService) AddExperience(ctx context.Context, entry models.ExperienceEntry) (*models.About, error) {
	return s.push(ctx, "experience", entry)
}

// AddEducation appends one entry to the education list.
func (s *AboutService) AddEducation(ctx context.Context, entry models.EducationEntry) (*models.About, error) {
	return s.push(ctx, "education", entry)
}

func (s *AboutService) push(ctx context.Context, field string, entry any) (*models.About, error) {
	var about models.About
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"key": models.AboutKey},
		bson.M{
			"$push": bson.M{field: entry},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&about)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("about document")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to update about document")
	}
	return &about, nil
}

// SanitizeStrings drops blank entries and trims the rest. Used for the
// techStack and badges arrays, which accept free-form client input.
func SanitizeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SanitizeExperience silently discards entries missing company or position.
func SanitizeExperience(entries []models.ExperienceEntry) []models.ExperienceEntry {
	out := make([]models.ExperienceEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Position) == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SanitizeEducation silently discards entries missing institution or degree.
func SanitizeEducation(entries []models.EducationEntry) []models.EducationEntry {
	out := make([]models.EducationEntry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Institution) == "" || strings.TrimSpace(e.Degree) == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
