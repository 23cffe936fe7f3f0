package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListTags godoc
// @Summary List tags
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tags)
}

// GetTag godoc
// @Summary Get tag
// @Tags Catalog
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{}
// @Router /tags/{id} [get]
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	tag, err := h.service.GetTag(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tag)
}

// ListIngredients godoc
// @Summary Search ingredients by name prefix
// @Tags Catalog
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {object} map[string]interface{}
// @Router /ingredients [get]
func (h *Handler) ListIngredients(c *gin.Context) {
	items, err := h.service.SearchIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetIngredient godoc
// @Summary Get ingredient
// @Tags Catalog
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{}
// @Router /ingredients/{id} [get]
func (h *Handler) GetIngredient(c *gin.Context) {
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.GetIngredient(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}
