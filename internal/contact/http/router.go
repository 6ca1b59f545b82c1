package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the visitor-facing submit route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

// RegisterAdmin attaches the inbox routes. Callers are expected to guard the
// group with the session middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.DELETE("/:id", h.delete)
}
