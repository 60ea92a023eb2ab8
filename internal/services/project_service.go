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

// projectSort is the canonical listing order: explicit display order
// ascending, recency descending as the tie-break.
var projectSort = bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}

// ProjectListFilter narrows a project listing.
type ProjectListFilter struct {
	Status string // defaults to published
	Query  string // optional text search
}

type ProjectService struct {
	col *mongo.Collection
}

func NewProjectService(database *mongo.Database) *ProjectService {
	return &ProjectService{col: database.Collection(db.ColProjects)}
}

// List returns one page of projects plus the total match count.
func (s *ProjectService) List(ctx context.Context, filter ProjectListFilter, page, limit int) ([]models.Project, int64, error) {
	status := filter.Status
	if status == "" {
		status = models.StatusPublished
	}
	query := bson.M{"status": status}
	if filter.Query != "" {
		query["$text"] = bson.M{"$search": filter.Query}
	}

	skip := int64((page - 1) * limit)
	opts := options.Find().
		SetSort(projectSort).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errs.Wrap(err, errs.CodeInternal, "failed to list projects")
	}
	projects := make([]models.Project, 0, limit)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, errs.Wrap(err, errs.CodeInternal, "failed to decode projects")
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errs.Wrap(err, errs.CodeInternal, "failed to count projects")
	}
	return projects, total, nil
}

// Featured returns up to six published projects flagged featured.
func (s *ProjectService) Featured(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(projectSort).SetLimit(6)
	cursor, err := s.col.Find(ctx, bson.M{"featured": true, "status": models.StatusPublished}, opts)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to list featured projects")
	}
	projects := make([]models.Project, 0, 6)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to decode projects")
	}
	return projects, nil
}

// Get fetches one project. A malformed id yields CodeInvalidID (400); a
// well-formed but absent id yields CodeNotFound (404).
func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.InvalidID(id)
	}

	var project models.Project
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&project); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("project")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to load project")
	}
	return &project, nil
}

// Create persists a new project.
func (s *ProjectService) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	if project.Status == "" {
		project.Status = models.StatusPublished
	}
	if project.Tech == nil {
		project.Tech = []string{}
	}
	if project.Images == nil {
		project.Images = []string{}
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := s.col.InsertOne(ctx, project); err != nil {
		return errs.Wrap(err, errs.CodeInternal, "failed to create project")
	}
	return nil
}

// Update replaces the mutable fields of a project and returns the new state.
func (s *ProjectService) Update(ctx context.Context, id string, set bson.M) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.InvalidID(id)
	}
	set["updated_at"] = time.Now()

	var project models.Project
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("project")
		}
		return nil, errs.Wrap(err, errs.CodeInternal, "failed to update project")
	}
	return &project, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.InvalidID(id)
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.Wrap(err, errs.CodeInternal, "failed to delete project")
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("project")
	}
	return nil
}
