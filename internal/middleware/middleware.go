package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vferraz/garage-api/internal/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextEmail   = "adminEmail"
	ContextProfile = "adminProfile"
)

// JWTAuth validates the Bearer token on every protected request.
// On success the administrator's email and profile claims are stored in the
// Gin context; any missing, malformed, expired or tampered token aborts the
// request with 401.
func JWTAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// RFC 6750: extract Bearer token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondUnauthorized(c, "Missing Authorization header. A valid Bearer token is required.")
			return
		}

		// Validate Bearer scheme format
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondUnauthorized(c, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondUnauthorized(c, "Bearer token is empty")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			respondUnauthorized(c, err.Error())
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextProfile, claims.Profile)

		c.Next()
	}
}

// respondUnauthorized aborts the request with a 401 error body
func respondUnauthorized(c *gin.Context, description string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":             "invalid_token",
		"error_description": description,
	})
}
