package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/handlers"
	"github.com/devport/portfolio-api/internal/logger"
)

// newErrorHandler builds the single translator every handler error funnels
// through. AppError codes map to their statuses; anything unrecognized
// becomes a generic 500 that never leaks internal detail in production.
func newErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *errs.AppError
		if errors.As(err, &ae) {
			status := ae.Code.HTTPStatus()
			if status >= fiber.StatusInternalServerError {
				logger.L().Error("internal error",
					zap.String("path", c.Path()), zap.Error(err))
				return internalError(c, err, production)
			}
			if ae.Code == errs.CodeTokenExpired || ae.Code == errs.CodeInvalidCredential {
				// The two 401 kinds are logged distinctly even though clients
				// see the same status.
				logger.L().Warn("auth rejected",
					zap.String("kind", string(ae.Code)), zap.String("path", c.Path()))
			}
			return handlers.Fail(c, status, ae.Message, ae.Details)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusRequestEntityTooLarge:
				// The payload limit surfaces as 400 in this API's contract.
				return handlers.Fail(c, fiber.StatusBadRequest, "request payload too large", nil)
			case fiber.StatusNotFound:
				return handlers.Fail(c, fiber.StatusNotFound, "route not found: "+c.Path(), nil)
			case fiber.StatusTooManyRequests:
				return handlers.Fail(c, fiber.StatusTooManyRequests,
					"too many requests from this IP, please try again later", nil)
			}
			if fe.Code < fiber.StatusInternalServerError {
				return handlers.Fail(c, fe.Code, fe.Message, nil)
			}
		}

		logger.L().Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return internalError(c, err, production)
	}
}

func internalError(c *fiber.Ctx, err error, production bool) error {
	var details any
	if !production {
		details = fiber.Map{"cause": err.Error()}
	}
	return handlers.Fail(c, fiber.StatusInternalServerError, "Internal Server Error", details)
}
