package recipe

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	recipes := r.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	recipes := r.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.PATCH("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)

		recipes.POST("/:id/favorite", h.AddFavorite)
		recipes.DELETE("/:id/favorite", h.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", h.AddToCart)
		recipes.DELETE("/:id/shopping_cart", h.RemoveFromCart)
	}
}
