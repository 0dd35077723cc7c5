package middleware

import (
	"net/http"
	"strings"

	"realtorbot/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer credential and resolves the
// caller's ID and role into the gin context. The role claim is what the
// action dispatcher gates on downstream.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
				"code":  0,
			})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
				"code":  0,
			})
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// RequireRole rejects callers whose resolved role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient role for this operation",
			})
			return
		}
		c.Next()
	}
}
