package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/models"
)

const claimsKey = "authClaims"

// RequireUser accepts any valid bearer token (user or admin) and stores
// the claims on the request context.
func RequireUser(m *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c, m)
		if !ok {
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin accepts only tokens carrying the admin role. A valid
// user token gets 403, anything else 401.
func RequireAdmin(m *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c, m)
		if !ok {
			return
		}
		if claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func extractClaims(c *gin.Context, m *JWTManager) (*Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
		return nil, false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return nil, false
	}

	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return nil, false
	}
	return claims, true
}

// CurrentClaims returns the claims stored by the middleware, or nil.
func CurrentClaims(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
