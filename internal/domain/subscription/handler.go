package subscription

import (
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

// Subscribe godoc
// @Summary Subscribe to an author
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Max recipes in the preview"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /users/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	authorID, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	limit, err := recipesLimit(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	profile, err := h.service.Follow(c.Request.Context(), userID, authorID, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, profile)
}

// Unsubscribe godoc
// @Summary Unsubscribe from an author
// @Tags Users
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/subscribe [delete]
func (h *Handler) Unsubscribe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	authorID, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Unfollow(c.Request.Context(), userID, authorID); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubscriptions godoc
// @Summary Authors the caller follows
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Max recipes per author"
// @Success 200 {object} map[string]interface{}
// @Router /users/subscriptions [get]
func (h *Handler) ListSubscriptions(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	limit, err := recipesLimit(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	p := pagination.FromQuery(c, h.pageSize)
	authors, total, err := h.service.ListSubscriptions(c.Request.Context(), userID, p.Offset(), p.Limit, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pagination.New(pagination.RequestURL(c), p, total, authors))
}

func recipesLimit(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery("recipes_limit")
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, ErrInvalidLimit
	}
	return &n, nil
}
