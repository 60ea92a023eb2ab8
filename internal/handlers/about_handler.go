package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
	"github.com/devport/portfolio-api/internal/services"
	"github.com/devport/portfolio-api/internal/validation"
)

type updateAboutRequest struct {
	Title            *string                   `json:"title"`
	ShowProjectIntro *bool                     `json:"showProjectIntro"`
	Bio              *string                   `json:"bio" validate:"omitempty,max=5000"`
	ShortBio         *string                   `json:"shortBio" validate:"omitempty,max=500"`
	ProfileImage     *string                   `json:"profileImage"`
	Logo             *string                   `json:"logo"`
	ResumeURL        *string                   `json:"resumeUrl"`
	Resume           *models.ResumeFile        `json:"resume"`
	AboutHome1       *string                   `json:"aboutHome1" validate:"omitempty,max=1000"`
	AboutHome2       *string                   `json:"aboutHome2" validate:"omitempty,max=1000"`
	AboutHome3       *string                   `json:"aboutHome3" validate:"omitempty,max=1000"`
	TechStack        *[]string                 `json:"techStack"`
	Badges           *[]string                 `json:"badges"`
	Experience       *[]models.ExperienceEntry `json:"experience"`
	Education        *[]models.EducationEntry  `json:"education"`
	SocialLinks      *map[string]string        `json:"socialLinks"`
	Contact          *models.ContactInfo       `json:"contact"`
	ExperienceStats  *models.ExperienceStats   `json:"experienceStats"`
}

type experienceRequest struct {
	Company     string     `json:"company" validate:"required"`
	Position    string     `json:"position" validate:"required"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
}

type educationRequest struct {
	Institution string     `json:"institution" validate:"required"`
	Degree      string     `json:"degree" validate:"required"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
}

type AboutHandler struct {
	svc *services.AboutService
}

func NewAboutHandler(svc *services.AboutService) *AboutHandler {
	return &AboutHandler{svc: svc}
}

// Get is public and lazily creates the default singleton when absent.
// Callers must tolerate the creation side effect on this read.
func (h *AboutHandler) Get(c *fiber.Ctx) error {
	about, err := h.svc.Get(c.Context())
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "About content retrieved successfully", about)
}

// Update applies a partial update. Array-valued sub-fields are replaced
// wholesale, with malformed entries silently discarded.
func (h *AboutHandler) Update(c *fiber.Ctx) error {
	var req updateAboutRequest
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
	if req.ShowProjectIntro != nil {
		set["show_project_intro"] = *req.ShowProjectIntro
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.ShortBio != nil {
		set["short_bio"] = *req.ShortBio
	}
	if req.ProfileImage != nil {
		set["profile_image"] = *req.ProfileImage
	}
	if req.Logo != nil {
		set["logo"] = *req.Logo
	}
	if req.ResumeURL != nil {
		set["resume_url"] = *req.ResumeURL
	}
	if req.Resume != nil {
		set["resume"] = *req.Resume
	}
	if req.AboutHome1 != nil {
		set["about_home_1"] = *req.AboutHome1
	}
	if req.AboutHome2 != nil {
		set["about_home_2"] = *req.AboutHome2
	}
	if req.AboutHome3 != nil {
		set["about_home_3"] = *req.AboutHome3
	}
	if req.TechStack != nil {
		set["tech_stack"] = services.SanitizeStrings(*req.TechStack)
	}
	if req.Badges != nil {
		set["badges"] = services.SanitizeStrings(*req.Badges)
	}
	if req.Experience != nil {
		set["experience"] = services.SanitizeExperience(*req.Experience)
	}
	if req.Education != nil {
		set["education"] = services.SanitizeEducation(*req.Education)
	}
	if req.SocialLinks != nil {
		set["social_links"] = *req.SocialLinks
	}
	if req.Contact != nil {
		set["contact"] = *req.Contact
	}
	if req.ExperienceStats != nil {
		set["experience_stats"] = *req.ExperienceStats
	}

	about, err := h.svc.Update(c.Context(), set)
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "About content updated successfully", about)
}

func (h *AboutHandler) AddExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	about, err := h.svc.AddExperience(c.Context(), models.ExperienceEntry{
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Experience added successfully", about)
}

func (h *AboutHandler) AddEducation(c *fiber.Ctx) error {
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	about, err := h.svc.AddEducation(c.Context(), models.EducationEntry{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Education added successfully", about)
}
