// Package handlers implements the HTTP endpoints. Every response is wrapped
// in the same envelope: {success, message?, data?, meta?, error?, details?}.
package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// Meta carries pagination metadata alongside paged listings.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// NewMeta computes pagination metadata; pages is ceiling(total/limit).
func NewMeta(total int64, page, limit int) *Meta {
	return &Meta{
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
		Limit: limit,
	}
}

// Envelope is the uniform response shape.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// OK writes a success envelope with the given status.
func OK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{Success: true, Message: message, Data: data})
}

// Paged writes a success envelope with pagination metadata.
func Paged(c *fiber.Ctx, message string, data any, meta *Meta) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Message: message, Data: data, Meta: meta})
}

// Fail writes an error envelope. Handlers normally return errors to the
// central translator instead; this is for the translator itself.
func Fail(c *fiber.Ctx, status int, message string, details any) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: message, Details: details})
}

// pageParams parses page/limit query parameters with bounds.
func pageParams(c *fiber.Ctx, defaultLimit int) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", defaultLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}
