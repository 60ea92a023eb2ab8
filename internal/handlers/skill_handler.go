package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
	"github.com/devport/portfolio-api/internal/services"
	"github.com/devport/portfolio-api/internal/validation"
)

type createSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,oneof=Frontend Backend Database DevOps Tools Other"`
	Proficiency *int   `json:"proficiency" validate:"omitempty,gte=0,lte=100"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

type updateSkillRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,oneof=Frontend Backend Database DevOps Tools Other"`
	Proficiency *int    `json:"proficiency" validate:"omitempty,gte=0,lte=100"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

type SkillHandler struct {
	svc *services.SkillService
}

func NewSkillHandler(svc *services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// List is public. Without a category filter the skills come back grouped by
// category; with one they come back as a flat slice.
func (h *SkillHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	skills, err := h.svc.List(c.Context(), category)
	if err != nil {
		return err
	}

	var data any = skills
	if category == "" {
		data = services.GroupByCategory(skills)
	}
	return OK(c, fiber.StatusOK, "Skills retrieved successfully", data)
}

func (h *SkillHandler) Get(c *fiber.Ctx) error {
	skill, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Skill retrieved successfully", skill)
}

func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req createSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	proficiency := 50
	if req.Proficiency != nil {
		proficiency = *req.Proficiency
	}
	skill := models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: proficiency,
		Icon:        req.Icon,
		Order:       req.Order,
	}
	if err := h.svc.Create(c.Context(), &skill); err != nil {
		return err
	}
	return OK(c, fiber.StatusCreated, "Skill created successfully", skill)
}

func (h *SkillHandler) Update(c *fiber.Ctx) error {
	var req updateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Proficiency != nil {
		set["proficiency"] = *req.Proficiency
	}
	if req.Icon != nil {
		set["icon"] = *req.Icon
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}

	skill, err := h.svc.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Skill updated successfully", skill)
}

func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Skill deleted successfully", fiber.Map{"id": id})
}
