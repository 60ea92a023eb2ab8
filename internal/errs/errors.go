// Package errs defines the application error taxonomy. Every failure that
// crosses a handler boundary is an *AppError carrying a stable code; the
// server's central error handler translates codes to HTTP statuses and the
// response envelope.
package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Code is a stable error code for programmatic handling.
type Code string

const (
	CodeValidation           Code = "validation_failed"
	CodeDuplicateKey         Code = "duplicate_key"
	CodeInvalidID            Code = "invalid_id"
	CodeNotFound             Code = "not_found"
	CodeNoCredential         Code = "no_credential"
	CodeInvalidCredential    Code = "invalid_credential"
	CodeTokenExpired         Code = "token_expired"
	CodeRegistrationDisabled Code = "registration_disabled"
	CodePayloadTooLarge      Code = "payload_too_large"
	CodeInternal             Code = "internal"
)

// HTTPStatus maps a code to its HTTP status. Unrecognized codes fall through
// to 500 so an unmapped failure can never leak with a misleading status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeDuplicateKey, CodeInvalidID, CodePayloadTooLarge:
		return fiber.StatusBadRequest
	case CodeNoCredential, CodeInvalidCredential, CodeTokenExpired:
		return fiber.StatusUnauthorized
	case CodeRegistrationDisabled:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// AppError carries a code, a human-readable message, an optional wrapped
// cause, and optional structured details (e.g. the aggregated field errors
// of a validation failure).
type AppError struct {
	Code    Code
	Message string
	Err     error
	Details any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetails attaches structured details to the error.
func (e *AppError) WithDetails(d any) *AppError {
	e.Details = d
	return e
}

// New creates an AppError with a code and message.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps a cause with a code and message.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return New(code, message)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// Common instances shared across services. Login failures reuse the exact
// same message for unknown email and wrong password so the two cases are
// indistinguishable to callers.
func NotFound(what string) *AppError {
	return New(CodeNotFound, what+" not found")
}

func InvalidID(value string) *AppError {
	return New(CodeInvalidID, fmt.Sprintf("invalid id: %s", value))
}

func InvalidCredentials() *AppError {
	return New(CodeInvalidCredential, "invalid credentials")
}
