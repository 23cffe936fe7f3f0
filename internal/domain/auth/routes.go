package auth

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
	}

	r.POST("/auth/token/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/me", h.GetMe)
		users.DELETE("/me", h.DeleteMe)
		users.POST("/set_password", h.SetPassword)
		users.PUT("/me/avatar", h.SetAvatar)
		users.DELETE("/me/avatar", h.DeleteAvatar)
	}

	r.POST("/auth/token/logout", h.Logout)
}
