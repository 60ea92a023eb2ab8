package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devport/portfolio-api/internal/errs"
)

type contactPayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(contactPayload{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "hello",
		Message: "just saying hi",
	})
	assert.NoError(t, err)
}

func TestStruct_CollectsAllViolations(t *testing.T) {
	// Two fields violated at once must both show up in the details; the
	// caller never gets failures one at a time.
	err := Struct(contactPayload{
		Name:    "Ada",
		Email:   "not-an-email",
		Subject: "hello",
	})
	require.Error(t, err)
	require.True(t, errs.IsCode(err, errs.CodeValidation))

	fields := fieldErrors(t, err)
	require.Len(t, fields, 2)

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "please provide a valid email", byField["email"])
	assert.Equal(t, "message is required", byField["message"])
}

func TestStruct_MaxBound(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	err := Struct(contactPayload{
		Name:    string(long),
		Email:   "ada@example.com",
		Subject: "hello",
		Message: "hi",
	})
	require.Error(t, err)

	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "name cannot exceed 100 characters", fields[0].Message)
}

func TestStruct_OneofAndRange(t *testing.T) {
	type skillPayload struct {
		Category    string `json:"category" validate:"required,oneof=Frontend Backend Database DevOps Tools Other"`
		Proficiency int    `json:"proficiency" validate:"gte=0,lte=100"`
	}

	err := Struct(skillPayload{Category: "Cooking", Proficiency: 120})
	require.Error(t, err)

	fields := fieldErrors(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "category must be one of: Frontend, Backend, Database, DevOps, Tools, Other", fields[0].Message)
	assert.Equal(t, "proficiency must be at most 100", fields[1].Message)
}

func TestStruct_OptionalPointerSkipped(t *testing.T) {
	type updatePayload struct {
		LiveURL *string `json:"liveUrl" validate:"omitempty,url"`
	}

	assert.NoError(t, Struct(updatePayload{}))

	bad := "not a url"
	err := Struct(updatePayload{LiveURL: &bad})
	require.Error(t, err)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "liveURL must be a valid URL", fields[0].Message)
}

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var ae *errs.AppError
	require.True(t, errors.As(err, &ae))
	details, ok := ae.Details.(map[string]any)
	require.True(t, ok)
	fields, ok := details["errors"].([]FieldError)
	require.True(t, ok)
	return fields
}
