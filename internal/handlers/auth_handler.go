package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/middleware"
	"github.com/devport/portfolio-api/internal/services"
	"github.com/devport/portfolio-api/internal/validation"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type AuthHandler struct {
	svc           *services.AuthService
	allowRegister bool
}

func NewAuthHandler(svc *services.AuthService, allowRegister bool) *AuthHandler {
	return &AuthHandler{svc: svc, allowRegister: allowRegister}
}

// Register creates the admin account. The registration switch is checked
// before the body is even parsed: when disabled, every attempt fails the
// same way regardless of payload.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if !h.allowRegister {
		return errs.New(errs.CodeRegistrationDisabled, "registration is currently disabled")
	}

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, token, err := h.svc.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return OK(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, token, err := h.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return OK(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Me returns the authenticated identity.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return OK(c, fiber.StatusOK, "User profile retrieved", fiber.Map{
		"user": middleware.CurrentUser(c),
	})
}

// UpdateMe applies a partial profile update; only supplied fields change.
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.Wrap(err, errs.CodeValidation, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	user, err := h.svc.UpdateProfile(c.Context(), middleware.CurrentUser(c).ID, req.Name, req.Email)
	if err != nil {
		return err
	}

	return OK(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
		"user": user,
	})
}
