package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tags := r.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.GET("/:id", h.GetTag)
	}

	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients) // ?name=<prefix>
		ingredients.GET("/:id", h.GetIngredient)
	}
}
