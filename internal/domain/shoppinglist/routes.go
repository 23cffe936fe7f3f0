package shoppinglist

import "github.com/gin-gonic/gin"

// download_shopping_list is the original action name; download_shopping_cart
// is what the web client requests.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/recipes/download_shopping_list", h.Download)
	r.GET("/recipes/download_shopping_cart", h.Download)
}
