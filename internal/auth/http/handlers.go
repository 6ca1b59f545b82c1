package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pitwall-dev/portfolio-backend/internal/auth/domain"
)

// Client is the slice of the auth service client the handlers need.
type Client interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	GetUser(ctx context.Context, accessToken string) (*domain.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	client Client
}

func New(client Client) *Handler {
	return &Handler{client: client}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "data": nil, "error": "email and password are required"})
		return
	}

	session, err := h.client.SignInWithPassword(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		// The auth service's message is shown to the visitor verbatim.
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "data": nil, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": session, "error": nil})
}

func (h *Handler) session(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil, "error": nil})
		return
	}

	user, err := h.client.GetUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// No valid session is an empty result, not an error.
			c.JSON(http.StatusOK, gin.H{"success": true, "data": nil, "error": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "data": nil, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user}, "error": nil})
}

func (h *Handler) logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "data": nil, "error": "missing authorization token"})
		return
	}

	if err := h.client.SignOut(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "data": nil, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": true, "error": nil})
}

func bearerToken(c *gin.Context) string {
	v := c.GetHeader("Authorization")
	if len(v) > 7 && strings.HasPrefix(v, "Bearer ") {
		return v[7:]
	}
	return ""
}
