package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
	"github.com/devport/portfolio-api/internal/services"
	"github.com/devport/portfolio-api/internal/validation"
)

type createProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=2000"`
	Tech        []string `json:"tech"`
	LiveURL     string   `json:"liveUrl" validate:"omitempty,url"`
	RepoURL     string   `json:"repoUrl" validate:"omitempty,url"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
	Status      string   `json:"status" validate:"omitempty,oneof=published draft"`
}

type updateProjectRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Tech        *[]string `json:"tech"`
	LiveURL     *string   `json:"liveUrl" validate:"omitempty,url"`
	RepoURL     *string   `json:"repoUrl" validate:"omitempty,url"`
	Images      *[]string `json:"images"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
	Status      *string   `json:"status" validate:"omitempty,oneof=published draft"`
}

type ProjectHandler struct {
	svc *services.ProjectService
}

func NewProjectHandler(svc *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List is public; it defaults to published projects only.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c, 10)
	filter := services.ProjectListFilter{
		Status: c.Query("status", models.StatusPublished),
		Query:  c.Query("q"),
	}

	projects, total, err := h.svc.List(c.Context(), filter, page, limit)
	if err != nil {
		return err
	}
	return Paged(c, "Projects retrieved successfully", projects, NewMeta(total, page, limit))
}

func (h *ProjectHandler) Featured(c *fiber.Ctx) error {
	projects, err := h.svc.Featured(c.Context())
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Featured projects retrieved successfully", projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Project retrieved successfully", project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Tech:        req.Tech,
		LiveURL:     req.LiveURL,
		RepoURL:     req.RepoURL,
		Images:      req.Images,
		Featured:    req.Featured,
		Order:       req.Order,
		Status:      req.Status,
	}
	if err := h.svc.Create(c.Context(), &project); err != nil {
		return err
	}
	return OK(c, fiber.StatusCreated, "Project created successfully", project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var req updateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Tech != nil {
		set["tech"] = *req.Tech
	}
	if req.LiveURL != nil {
		set["live_url"] = *req.LiveURL
	}
	if req.RepoURL != nil {
		set["repo_url"] = *req.RepoURL
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	project, err := h.svc.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Project updated successfully", project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Project deleted successfully", fiber.Map{"id": id})
}
