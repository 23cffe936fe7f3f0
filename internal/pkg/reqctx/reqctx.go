// Package reqctx reads caller identity and path parameters from a gin context.
package reqctx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/response"
)

// UserID returns the authenticated caller, or 0 for anonymous requests.
func UserID(c *gin.Context) int64 {
	v, _ := c.Get("user_id")
	switch v := v.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

// MustUserID writes 401 and returns 0 when the request is anonymous.
func MustUserID(c *gin.Context) int64 {
	id := UserID(c)
	if id == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		c.Abort()
	}
	return id
}

// ParamID parses a positive integer path parameter, writing 400 on failure.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
