package recipe

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

func setupTestRouter(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterGin()

	f := setupFixture(t)
	h := NewHandler(f.svc, 6)

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
	return r, f
}

func doJSONRequest(r http.Handler, method, path string, body any, userID int64) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRecipeEndpoints_Lifecycle(t *testing.T) {
	r, f := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/recipes", f.request("pie"), 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSONRequest(r, http.MethodPost, "/api/recipes", f.request("pie"), f.alice)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Data FullRecipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	id := strconv.FormatInt(created.Data.ID, 10)
	assert.Equal(t, "alice", created.Data.Author.Username)

	rr = doJSONRequest(r, http.MethodGet, "/api/recipes/"+id, nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"measurement_unit":"g"`)
	assert.NotContains(t, rr.Body.String(), "recipe_id")

	rr = doJSONRequest(r, http.MethodPatch, "/api/recipes/"+id, f.request("pie 2"), f.bob)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSONRequest(r, http.MethodPatch, "/api/recipes/"+id, f.request("pie 2"), f.alice)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"pie 2"`)

	rr = doJSONRequest(r, http.MethodDelete, "/api/recipes/"+id, nil, f.alice)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/recipes/"+id, nil, 0)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRecipeEndpoints_ValidationStatuses(t *testing.T) {
	r, f := setupTestRouter(t)

	req := f.request("pie")
	req.Tags = []int64{f.lunch, f.lunch}
	rr := doJSONRequest(r, http.MethodPost, "/api/recipes", req, f.alice)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "DUPLICATE_TAG")

	req = f.request("pie")
	req.Ingredients[0].Amount = 0
	rr = doJSONRequest(r, http.MethodPost, "/api/recipes", req, f.alice)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_AMOUNT")

	req = f.request("")
	rr = doJSONRequest(r, http.MethodPost, "/api/recipes", req, f.alice)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")

	rr = doJSONRequest(r, http.MethodGet, "/api/recipes?author=abc", nil, 0)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/recipes?tags=lunch&tags=no-such-tag", nil, 0)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNKNOWN_TAG")

	rr = doJSONRequest(r, http.MethodGet, "/api/recipes?tags=lunch", nil, 0)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRecipeEndpoints_FavoriteAndCart(t *testing.T) {
	r, f := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/recipes", f.request("pie"), f.alice)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created struct {
		Data FullRecipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	id := strconv.FormatInt(created.Data.ID, 10)

	for _, path := range []string{"/favorite", "/shopping_cart"} {
		rr = doJSONRequest(r, http.MethodPost, "/api/recipes/"+id+path, nil, f.bob)
		require.Equal(t, http.StatusCreated, rr.Code, path)
		assert.Contains(t, rr.Body.String(), `"cooking_time":30`)

		rr = doJSONRequest(r, http.MethodPost, "/api/recipes/"+id+path, nil, f.bob)
		assert.Equal(t, http.StatusConflict, rr.Code, path)
	}

	rr = doJSONRequest(r, http.MethodGet, "/api/recipes?is_favorited=1&is_in_shopping_cart=1", nil, f.bob)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":1`)
	assert.Contains(t, rr.Body.String(), `"is_favorited":true`)
	assert.Contains(t, rr.Body.String(), `"is_in_shopping_cart":true`)

	for _, path := range []string{"/favorite", "/shopping_cart"} {
		rr = doJSONRequest(r, http.MethodDelete, "/api/recipes/"+id+path, nil, f.bob)
		assert.Equal(t, http.StatusNoContent, rr.Code, path)

		rr = doJSONRequest(r, http.MethodDelete, "/api/recipes/"+id+path, nil, f.bob)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}
