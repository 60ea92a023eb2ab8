package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
	"github.com/devport/portfolio-api/internal/services"
	"github.com/devport/portfolio-api/internal/validation"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit is the only public write endpoint. The caller's address is captured
// for audit purposes.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	msg := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: c.IP(),
	}
	if err := h.svc.Create(c.Context(), &msg); err != nil {
		return err
	}

	return OK(c, fiber.StatusCreated, "Message sent successfully! We will get back to you soon.", fiber.Map{
		"id":        msg.ID,
		"createdAt": msg.CreatedAt,
	})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c, 20)

	var read *bool
	if q := c.Query("read"); q != "" {
		b := q == "true"
		read = &b
	}

	messages, total, err := h.svc.List(c.Context(), read, page, limit)
	if err != nil {
		return err
	}
	return Paged(c, "Messages retrieved successfully", messages, NewMeta(total, page, limit))
}

// Get flips the message's read flag as a side effect of the first retrieval.
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	msg, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Message retrieved successfully", msg)
}

func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	msg, err := h.svc.MarkRead(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Message marked as read", msg)
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Message deleted successfully", fiber.Map{"id": id})
}
