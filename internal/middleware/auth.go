package middleware

import (
	"net/http"
	"strings"

	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid Bearer token and puts user_id and is_admin into the
// request context.
func Auth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c, jwtService)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AuthOptional extracts the requester when a valid token is present and lets
// anonymous requests through. Read endpoints use it so per-user flags
// (is_subscribed, is_favorited, is_in_shopping_cart) can be filled in.
func AuthOptional(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := extractClaims(c, jwtService); ok {
			c.Set("user_id", claims.UserID)
			c.Set("is_admin", claims.IsAdmin)
		}
		c.Next()
	}
}

// AdminOnly rejects requests from non-administrators. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: administrator rights required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractClaims(c *gin.Context, jwtService *jwt.Service) (*jwt.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}
