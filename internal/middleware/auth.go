package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/response"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth rejects requests without a valid bearer token and stores the
// caller's user_id and role in the context.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		tokenStr, ok := bearerToken(h)
		if !ok {
			abortUnauthorized(c, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid bearer token is present.
// Requests without one, or with an unusable one, continue anonymously.
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := tokens.ValidateToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found {
		return "", false
	}
	// djoser-style clients send "Token <key>"
	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, code, message string) {
	response.Error(c, http.StatusUnauthorized, code, message)
	c.Abort()
}
