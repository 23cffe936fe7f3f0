package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/pkg/apperr"
)

func serve(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", func(c *gin.Context) { FromError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestFromError_Kinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.Validation("BAD", "bad"), http.StatusBadRequest, "BAD"},
		{fmt.Errorf("wrap: %w", apperr.Conflict("DUP", "dup")), http.StatusConflict, "DUP"},
		{apperr.NotFound("MISSING", "missing"), http.StatusNotFound, "MISSING"},
		{apperr.Forbidden("NOPE", "nope"), http.StatusForbidden, "NOPE"},
		{apperr.Unauthorized("WHO", "who"), http.StatusUnauthorized, "WHO"},
		{errors.New("db is on fire"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		status, body := serve(t, tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, false, body["success"])

		errBody := body["error"].(map[string]any)
		assert.Equal(t, tt.code, errBody["code"])
	}
}

func TestFromError_HidesInternalMessage(t *testing.T) {
	_, body := serve(t, errors.New("pq: password authentication failed"))
	errBody := body["error"].(map[string]any)
	assert.NotContains(t, errBody["message"], "password")
}
