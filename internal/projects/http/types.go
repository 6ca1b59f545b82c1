package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

// Service is the slice of the project service the handlers need.
type Service interface {
	List(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, data domain.CreateProjectData) (*domain.Project, error)
	Update(ctx context.Context, id string, data domain.UpdateProjectData) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Every response uses the same envelope so callers only branch on "success".
// Store error messages are passed through verbatim.

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data, "error": nil})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "data": nil, "error": msg})
}
