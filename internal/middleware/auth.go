package middleware

import (
	"net/http"
	"strings"

	"holocron/config"
	"holocron/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets UserID, Name, Email in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("name", claims.Name)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetUserName returns the authenticated user's name from context (must be
// used after AuthRequired).
func GetUserName(c *gin.Context) string {
	v, _ := c.Get("name")
	if v == nil {
		return ""
	}
	return v.(string)
}

// GetUserID returns the authenticated user ID from context.
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
