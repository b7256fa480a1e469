package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"question-paper/internal/domain"
	"question-paper/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/", func(c *fiber.Ctx) error { return err })
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown topic", domain.NewUnknownTopicError("Quantum"), http.StatusNotFound, "UNKNOWN_TOPIC"},
		{"invalid input", domain.NewInvalidInputError("bad"), http.StatusBadRequest, "INVALID_INPUT"},
		{"no topics", domain.NewNoTopicsSelectedError(), http.StatusUnprocessableEntity, "NO_TOPICS_SELECTED"},
		{"transition", domain.NewInvalidTransitionError(domain.PageSelection, "finalize the paper"), http.StatusConflict, "INVALID_TRANSITION"},
		{"in progress", domain.NewGenerationInProgressError(), http.StatusConflict, "GENERATION_IN_PROGRESS"},
		{"internal", domain.NewInternalError("save failed", errors.New("redis down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newErrorApp(tt.err).Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	resp, err := newErrorApp(domain.ValidationErrors{domain.NewMissingFieldError("topic")}).
		Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "INVALID_INPUT", body.Code)
	assert.NotNil(t, body.Errors)
}

func TestErrorHandler_FiberAndUnknownErrors(t *testing.T) {
	resp, err := newErrorApp(fiber.ErrMethodNotAllowed).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, resp).Code)

	resp, err = newErrorApp(errors.New("boom")).Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "Internal server error", body.Message)
}
