package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Policy maps a route, keyed as "METHOD /route/pattern", to the set of
// profiles allowed to call it. Routes absent from the table are denied.
type Policy map[string][]string

// RouteKey builds the policy key for a method and route pattern
func RouteKey(method, path string) string {
	return method + " " + path
}

// Authorize checks the authenticated administrator's profile against the
// policy entry for the matched route. JWTAuth must run first; a request
// without a profile in context, or whose route has no policy entry, is
// rejected.
func Authorize(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, exists := c.Get(ContextProfile)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Administrator not authenticated"})
			return
		}

		userProfile, ok := profile.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid profile format"})
			return
		}

		// c.FullPath returns the registered route pattern, not the raw URL,
		// so the lookup key is stable across path parameters
		allowed, found := policy[RouteKey(c.Request.Method, c.FullPath())]
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No access policy for this route"})
			return
		}

		for _, role := range allowed {
			if userProfile == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":             "Insufficient permissions",
			"required_profiles": allowed,
			"your_profile":      userProfile,
		})
	}
}
