package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// UserID extracts the authenticated user's id from the Gin context.
// This is set by the session middleware.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// Email extracts the authenticated user's email from the Gin context.
func Email(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxEmail))
}
