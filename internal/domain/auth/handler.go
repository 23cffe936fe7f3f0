package auth

import (
	"net/http"

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

// Register godoc
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToFullProfile(u, false))
}

// Login godoc
// @Summary Obtain a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/token/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"auth_token": token})
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; the client discards its copy.
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Router /auth/token/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if reqctx.MustUserID(c) == 0 {
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	p := pagination.FromQuery(c, h.pageSize)
	profiles, total, err := h.service.ListProfiles(c.Request.Context(), reqctx.UserID(c), p.Offset(), p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pagination.New(pagination.RequestURL(c), p, total, profiles))
}

// GetUser godoc
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := reqctx.ParamID(c, "id")
	if !ok {
		return
	}
	profile, err := h.service.Profile(c.Request.Context(), reqctx.UserID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// GetMe godoc
// @Summary Current user profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	profile, err := h.service.Profile(c.Request.Context(), userID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// SetPassword godoc
// @Summary Change password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Param body body SetPasswordRequest true "passwords"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Router /users/set_password [post]
func (h *Handler) SetPassword(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.service.SetPassword(c.Request.Context(), userID, req); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAvatar godoc
// @Summary Set avatar
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body AvatarRequest true "avatar reference"
// @Success 200 {object} map[string]interface{}
// @Router /users/me/avatar [put]
func (h *Handler) SetAvatar(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	avatar, err := h.service.SetAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar": avatar})
}

// DeleteAvatar godoc
// @Summary Remove avatar
// @Tags Users
// @Security BearerAuth
// @Success 204
// @Router /users/me/avatar [delete]
func (h *Handler) DeleteAvatar(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	if err := h.service.DeleteAvatar(c.Request.Context(), userID); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMe godoc
// @Summary Delete own account
// @Description Removes the account with its recipes, favorites, cart and subscriptions.
// @Tags Users
// @Security BearerAuth
// @Success 204
// @Router /users/me [delete]
func (h *Handler) DeleteMe(c *gin.Context) {
	userID := reqctx.MustUserID(c)
	if userID == 0 {
		return
	}
	if err := h.service.DeleteAccount(c.Request.Context(), userID); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
