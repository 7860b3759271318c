package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "session created", map[string]string{"state": "REQUESTED"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "session created", resp.Message)
	assert.Equal(t, map[string]interface{}{"state": "REQUESTED"}, resp.Data)
	assert.NotContains(t, rec.Body.String(), `"error"`)
}

func TestSuccessResponse_OmitsEmptyFields(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusOK, "", nil))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestClientErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantError  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "limit must be a positive integer") }, http.StatusBadRequest, "limit must be a positive integer"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"unauthorized message", func(c echo.Context) error { return UnauthorizedResponse(c, "token expired") }, http.StatusUnauthorized, "token expired"},
		{"explicit status", func(c echo.Context) error { return ErrorResponseHandler(c, http.StatusTooManyRequests, "slow down") }, http.StatusTooManyRequests, "slow down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			resp := decodeError(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestErrorFromAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not found", apperror.NotFound("session not found"), http.StatusNotFound, "session not found"},
		{"forbidden", apperror.Forbidden("token does not match this session"), http.StatusForbidden, "token does not match this session"},
		{"conflict", apperror.Conflict("transition ACTIVE -> ACCEPTED not allowed"), http.StatusConflict, "transition ACTIVE -> ACCEPTED not allowed"},
		{"validation", apperror.Validation("lat must be within [-90, 90]"), http.StatusBadRequest, "lat must be within [-90, 90]"},
		{"upstream", apperror.Upstream(errors.New("dial tcp"), "database unavailable"), http.StatusServiceUnavailable, "database unavailable"},
		{"unclassified", errors.New("nil pointer somewhere"), http.StatusInternalServerError, "internal server error"},
		{"wrapped", fmt.Errorf("failed to create session: %w", apperror.Conflict("busy")), http.StatusConflict, "busy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, ErrorFromAppError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, StatusFromError(tt.err))

			resp := decodeError(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
