package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/handlers"
	"github.com/devport/portfolio-api/internal/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func decodeEnvelope(t *testing.T, resp *http.Response) handlers.Envelope {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env handlers.Envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return env
}

func translatorApp(production bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: newErrorHandler(production)})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return errs.New(errs.CodeValidation, "validation failed").
			WithDetails(fiber.Map{"errors": []fiber.Map{{"field": "email", "message": "please provide a valid email"}}})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return errs.NotFound("project")
	})
	app.Get("/expired", func(c *fiber.Ctx) error {
		return errs.New(errs.CodeTokenExpired, "token expired")
	})
	app.Get("/disabled", func(c *fiber.Ctx) error {
		return errs.New(errs.CodeRegistrationDisabled, "registration is disabled")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	app.Get("/wrapped-internal", func(c *fiber.Ctx) error {
		return errs.Wrap(errors.New("driver timeout"), errs.CodeInternal, "database unavailable")
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func TestErrorHandler_AppErrorStatuses(t *testing.T) {
	app := translatorApp(false)

	tests := []struct {
		path       string
		wantStatus int
		wantError  string
	}{
		{"/validation", http.StatusBadRequest, "validation failed"},
		{"/missing", http.StatusNotFound, "project not found"},
		{"/expired", http.StatusUnauthorized, "token expired"},
		{"/disabled", http.StatusForbidden, "registration is disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := get(t, app, tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			env := decodeEnvelope(t, resp)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}

func TestErrorHandler_ValidationDetailsPreserved(t *testing.T) {
	app := translatorApp(false)

	resp := get(t, app, "/validation")
	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Details)
}

func TestErrorHandler_UnknownErrorBecomes500(t *testing.T) {
	app := translatorApp(false)

	resp := get(t, app, "/boom")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal Server Error", env.Error)
	// Outside production the cause is surfaced for debugging.
	require.NotNil(t, env.Details)
}

func TestErrorHandler_ProductionHidesCause(t *testing.T) {
	app := translatorApp(true)

	for _, path := range []string{"/boom", "/wrapped-internal"} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Internal Server Error", env.Error)
		assert.Nil(t, env.Details)
	}
}

func TestErrorHandler_InternalAppErrorNeverLeaksMessage(t *testing.T) {
	// Even outside production the original message stays out of the body;
	// only the cause shows up under details.
	app := translatorApp(false)

	resp := get(t, app, "/wrapped-internal")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Internal Server Error", env.Error)
}

func TestErrorHandler_UnmatchedRoute(t *testing.T) {
	app := translatorApp(false)

	resp := get(t, app, "/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "route not found: /nope", env.Error)
}
