package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		wantErr string
	}{
		{
			name: "valid",
			req:  dto.CreateUserRequest{Name: strPtr("alice"), Password: strPtr("p1")},
		},
		{
			name: "empty strings are present",
			req:  dto.CreatePageRequest{Title: strPtr(""), Content: strPtr("")},
		},
		{
			name:    "missing field",
			req:     dto.CreateUserRequest{Name: strPtr("alice")},
			wantErr: "password is required",
		},
		{
			name:    "too long",
			req:     dto.CreateNotebookRequest{Title: strPtr(strings.Repeat("x", 101))},
			wantErr: "title must be at most 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperror.KindMalformed, apperror.KindOf(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{apperror.ErrUserNotFound, 404, "User not found"},
		{fmt.Errorf("wrapped: %w", apperror.ErrPageNotFound), 404, "Page not found or user is not authorized"},
		{apperror.Malformed("title is required"), 400, "title is required"},
		{fiber.ErrMethodNotAllowed, 405, "Method Not Allowed"},
		{errors.New("disk full"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			status, msg := StatusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func newTestApp() *fiber.App {
	app := fiber.New()
	log := logger.NewNopLogger()
	app.Use(RequestLogger(log))
	app.Use(ErrorHandlerMiddleware(log))

	app.Post("/echo/:id", func(ctx *fiber.Ctx) error {
		if _, ok := ParamID(ctx, "id"); !ok {
			return apperror.ErrNotebookNotFound
		}
		var req dto.CreateNotebookRequest
		if err := ParseBody(ctx, &req); err != nil {
			return err
		}
		return ctx.Status(fiber.StatusCreated).JSON(MessageResponse(*req.Title))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestParseBodyThroughMiddleware(t *testing.T) {
	app := newTestApp()
	id := "7a0c6d8e-3b1f-4a51-9f1e-2d7f3c0b9a11"

	t.Run("ok", func(t *testing.T) {
		status, out := doRequest(t, app, "/echo/"+id, `{"title":"Trip"}`)
		assert.Equal(t, 201, status)
		assert.Equal(t, "Trip", out["message"])
	})

	t.Run("bad json", func(t *testing.T) {
		status, out := doRequest(t, app, "/echo/"+id, `{"title":`)
		assert.Equal(t, 400, status)
		assert.Equal(t, "Request body must be valid JSON", out["error"])
	})

	t.Run("empty body", func(t *testing.T) {
		status, out := doRequest(t, app, "/echo/"+id, ``)
		assert.Equal(t, 400, status)
		assert.Equal(t, "Request body is required", out["error"])
	})

	t.Run("missing field", func(t *testing.T) {
		status, out := doRequest(t, app, "/echo/"+id, `{}`)
		assert.Equal(t, 400, status)
		assert.Equal(t, "title is required", out["error"])
	})

	t.Run("garbage id", func(t *testing.T) {
		status, out := doRequest(t, app, "/echo/not-a-uuid", `{"title":"Trip"}`)
		assert.Equal(t, 404, status)
		assert.Equal(t, "Notebook not found or user is not authorized", out["error"])
	})
}
