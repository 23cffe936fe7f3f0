package recipe

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service  *Service
	pageSize int
}

func NewHandler(service *Service, pageSize int) *Handler {
	return &Handler{service: service, pageSize: pageSize}
}

// ListRecipes godoc
// @Summary List recipes
// @Description Newest first. is_favorited and is_in_shopping_cart are ignored for anonymous callers.
// @Tags Recipes
// @Produce json
// @Param author query int false "Author ID"
// @Param tags query []string false "Tag slugs (any of)"
// @Param is_favorited query int false "1 to show only favorites"
// @Param is_in_shopping_cart query int false "1 to show only cart entries"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /recipes [get]
func (h *Handler) ListRecipes(c *gin.Context) {
	p := pagination.FromQuery(c, h.pageSize)
	q := ListQuery{
		ViewerID:  reqctx.UserID(c),
		TagSlugs:  c.QueryArray("tags"),
		Favorited: c.Query("is_favorited") == "1",
		InCart:    c.Query("is_in_shopping_cart") == "1",
		Offset:    p.Offset(),
		Limit:     p.Limit,
	}
	if raw := c.Query("author"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_AUTHOR", "Invalid author")
			return
		}
		q.AuthorID = id
	}

	recipes, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pagination.New(pagination.RequestURL(c), p, total, recipes))
}

// GetRecipe godoc
// @Summary Get recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id} [get]
func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	rec, err := h.service.Get(c.Request.Context(), reqctx.UserID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

// CreateRecipe godoc
// @Summary Create recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body RecipeRequest true "recipe"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /recipes [post]
func (h *Handler) CreateRecipe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	rec, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rec)
}

// UpdateRecipe godoc
// @Summary Update recipe
// @Description Author only. Ingredients and tags are replaced as a whole.
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param body body RecipeRequest true "recipe"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /recipes/{id} [patch]
func (h *Handler) UpdateRecipe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	rec, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

// DeleteRecipe godoc
// @Summary Delete recipe
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 403 {object} map[string]interface{}
// @Router /recipes/{id} [delete]
func (h *Handler) DeleteRecipe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFavorite godoc
// @Summary Add recipe to favorites
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /recipes/{id}/favorite [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	h.add(c, h.service.Favorites())
}

// RemoveFavorite godoc
// @Summary Remove recipe from favorites
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/favorite [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	h.remove(c, h.service.Favorites())
}

// AddToCart godoc
// @Summary Add recipe to shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /recipes/{id}/shopping_cart [post]
func (h *Handler) AddToCart(c *gin.Context) {
	h.add(c, h.service.Cart())
}

// RemoveFromCart godoc
// @Summary Remove recipe from shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/shopping_cart [delete]
func (h *Handler) RemoveFromCart(c *gin.Context) {
	h.remove(c, h.service.Cart())
}

type toggler interface {
	Add(ctx context.Context, userID, recipeID int64) (ShortSummary, error)
	Remove(ctx context.Context, userID, recipeID int64) error
}

func (h *Handler) add(c *gin.Context, t toggler) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	summary, err := t.Add(c.Request.Context(), userID, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, summary)
}

func (h *Handler) remove(c *gin.Context, t toggler) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	if err := t.Remove(c.Request.Context(), userID, id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
