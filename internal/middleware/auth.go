// Package middleware contains the request filters applied ahead of handlers.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/models"
)

// LocalUser is the context key under which the resolved identity is stored.
const LocalUser = "user"

// TokenVerifier verifies a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserResolver resolves a token subject to a live user record.
type UserResolver interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth is the sole authorization mechanism: any valid identity passes,
// there are no per-route role checks. A missing token is reported distinctly
// from a present-but-invalid one; a subject that no longer resolves to an
// existing user is a credential failure, not a server error.
func RequireAuth(tokens TokenVerifier, users UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return errs.New(errs.CodeNoCredential, "not authorized, no token provided")
		}

		tokenString := header
		if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
			tokenString = strings.TrimSpace(header[7:])
		}
		if tokenString == "" {
			return errs.New(errs.CodeNoCredential, "not authorized, no token provided")
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return err
		}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return err
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser returns the identity attached by RequireAuth, or nil on an
// unprotected route.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalUser).(*models.User)
	return user
}
