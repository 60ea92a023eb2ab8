package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	env string
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

// Health is the unauthenticated liveness probe.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: "Server is running",
		Data: fiber.Map{
			"environment": h.env,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// Welcome answers the API root with an endpoint index.
func (h *HealthHandler) Welcome(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: "Welcome to Portfolio Backend API",
		Data: fiber.Map{
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":     "/api/auth",
				"projects": "/api/projects",
				"about":    "/api/about",
				"skills":   "/api/skills",
				"contact":  "/api/contact",
				"upload":   "/api/upload",
			},
		},
	})
}
