package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "bizsuite/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponses(t *testing.T) {
	tests := []struct {
		name   string
		send   func(*gin.Context, interface{})
		status int
	}{
		{"success", Success, http.StatusOK},
		{"created", Created, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c, map[string]string{"slug": "sardor-textiles"})

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.True(t, resp.Success)
			assert.Equal(t, map[string]interface{}{"slug": "sardor-textiles"}, resp.Data)
			assert.Empty(t, resp.Error)
		})
	}
}

func TestNoContent(t *testing.T) {
	router := gin.New()
	router.DELETE("/leads/1", NoContent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/leads/1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		send    func(*gin.Context)
		status  int
		message string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "invalid business ID") }, http.StatusBadRequest, "invalid business ID"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "missing token") }, http.StatusUnauthorized, "missing token"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no current business selected") }, http.StatusForbidden, "no current business selected"},
		{"internal", InternalError, http.StatusInternalServerError, "internal server error"},
		{"arbitrary status", func(c *gin.Context) { Error(c, http.StatusTeapot, "teapot") }, http.StatusTeapot, "teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Nil(t, resp.Data)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"not found", apperrors.ErrBusinessNotFound, http.StatusNotFound, "business not found"},
		{"wrapped conflict", fmt.Errorf("create: %w", apperrors.ErrBusinessSlugTaken), http.StatusConflict, "create: business slug is already taken"},
		{"queue full keeps message", apperrors.ErrReportQueueFull, http.StatusServiceUnavailable, apperrors.ErrReportQueueFull.Error()},
		{"policy input hidden", fmt.Errorf("%w: offer has no business", apperrors.ErrInvalidPolicyInput), http.StatusInternalServerError, "internal server error"},
		{"unknown hidden", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			FromError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Error)
		})
	}
}
