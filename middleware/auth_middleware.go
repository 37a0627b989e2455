package middleware

import (
	"time"

	"backend/auth"
	"backend/model"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("auth_token")
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid session"})
			return
		}

		// Sliding expiry: refresh once less than half the 30-minute window remains
		if time.Until(claims.ExpiresAt.Time) < 15*time.Minute {
			newToken, _ := auth.GenerateToken(claims.User)
			c.SetCookie("auth_token", newToken, 1800, "/", "", false, true)
		}

		c.Set("user", claims.User)
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)

		if !ok || user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(403, gin.H{"error": "Forbidden: Admin access required"})
			return
		}

		c.Next()
	}
}

// GetUser extracts the authenticated user DTO from the request context.
func GetUser(c *gin.Context) (model.UserDto, bool) {
	val, exists := c.Get("user")
	if !exists {
		return model.UserDto{}, false
	}

	user, ok := val.(model.UserDto)
	return user, ok
}
