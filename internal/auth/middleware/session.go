package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pitwall-dev/portfolio-backend/internal/auth"
)

// RequireSession validates the bearer token on protected routes and aborts
// with 401 before any protected handler runs. On success the user's id and
// email are stored in the context.
func RequireSession(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "data": nil, "error": "missing authorization token"})
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "data": nil, "error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(auth.CtxUserID, claims.Subject)
		c.Set(auth.CtxEmail, claims.Email)

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
