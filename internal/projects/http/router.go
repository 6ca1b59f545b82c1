package http

import "github.com/gin-gonic/gin"

// Register attaches the public read-only project routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/featured", h.listFeatured)
	rg.GET("/categories", h.listCategories)
	rg.GET("/:id", h.get)
}

// RegisterAdmin attaches the write routes. Callers are expected to guard the
// group with the session middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
