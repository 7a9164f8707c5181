package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homedrive-api/internal/infrastructure/jwt"
)

const (
	CtxAuthID = "authID"
	CtxEmail  = "email"
)

// AuthMiddleware validates the bearer token minted by the identity provider
// and stashes the subject id and email for the handlers.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Not authenticated"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Not authenticated"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Not authenticated"},
			)
			return
		}

		c.Set(CtxAuthID, claims.Subject)
		c.Set(CtxEmail, claims.Email)

		c.Next()
	}
}
