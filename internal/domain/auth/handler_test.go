package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/pkg/validator"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterGin()

	h := NewHandler(NewService(NewRepository(setupTestDB(t)), stubTokens{}, nil), 6)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User-ID"); userID != "" {
			id, _ := strconv.ParseInt(userID, 10, 64)
			c.Set("user_id", id)
		}
		c.Next()
	})

	api := r.Group("/api")
	h.RegisterRoutes(api)
	h.RegisterProtectedRoutes(api)
	return r
}

func doJSONRequest(r http.Handler, method, path string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User-ID", userID)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestUserEndpoints_RegisterLoginMe(t *testing.T) {
	r := setupTestRouter(t)

	signup := map[string]any{
		"email":      "chef@example.com",
		"username":   "chef",
		"first_name": "Anna",
		"last_name":  "Cook",
		"password":   "secret123",
	}
	rr := doJSONRequest(r, http.MethodPost, "/api/users", signup, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Data Profile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "chef", created.Data.Username)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = doJSONRequest(r, http.MethodPost, "/api/users", signup, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "USERNAME_TAKEN")

	rr = doJSONRequest(r, http.MethodPost, "/api/auth/token/login",
		map[string]any{"email": "chef@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"auth_token":"token-`)

	rr = doJSONRequest(r, http.MethodPost, "/api/auth/token/login",
		map[string]any{"email": "chef@example.com", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	id := strconv.FormatInt(created.Data.ID, 10)
	rr = doJSONRequest(r, http.MethodGet, "/api/users/me", nil, id)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"email":"chef@example.com"`)

	rr = doJSONRequest(r, http.MethodGet, "/api/users/"+id, nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUserEndpoints_Validation(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/users", map[string]any{
		"email":      "not-an-email",
		"username":   "bad name!",
		"first_name": "A",
		"last_name":  "B",
		"password":   "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Username":"username"`)
	assert.Contains(t, rr.Body.String(), `"Email":"email"`)
}

func TestUserEndpoints_Unauthorized(t *testing.T) {
	r := setupTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodDelete, "/api/users/me"},
		{http.MethodPut, "/api/users/me/avatar"},
		{http.MethodPost, "/api/auth/token/logout"},
	}
	for _, tc := range cases {
		rr := doJSONRequest(r, tc.method, tc.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, tc.path)
	}
}

func TestUserEndpoints_AvatarAndDelete(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/users", map[string]any{
		"email": "a@example.com", "username": "a", "first_name": "A", "last_name": "B", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	var created struct {
		Data Profile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	id := strconv.FormatInt(created.Data.ID, 10)

	rr = doJSONRequest(r, http.MethodPut, "/api/users/me/avatar", map[string]any{"avatar": "avatars/a.png"}, id)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "avatars/a.png")

	rr = doJSONRequest(r, http.MethodDelete, "/api/users/me/avatar", nil, id)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/users/me", nil, id)
	assert.Contains(t, rr.Body.String(), `"avatar":null`)

	rr = doJSONRequest(r, http.MethodDelete, "/api/users/me", nil, id)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/users/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
