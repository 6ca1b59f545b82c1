package service

import (
	"context"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
	"github.com/pitwall-dev/portfolio-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic. It is the seam the
// HTTP handlers and the admin/browse controllers share.
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List returns projects matching the filters, newest first
func (s *ProjectService) List(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error) {
	return s.repo.List(ctx, f)
}

// ListFeatured returns the featured subset, newest first
func (s *ProjectService) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListFeatured(ctx)
}

// Get returns a single project by id
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new project
func (s *ProjectService) Create(ctx context.Context, data domain.CreateProjectData) (*domain.Project, error) {
	return s.repo.Create(ctx, data)
}

// Update applies a partial update to a project
func (s *ProjectService) Update(ctx context.Context, id string, data domain.UpdateProjectData) (*domain.Project, error) {
	return s.repo.Update(ctx, id, data)
}

// Delete removes a project permanently
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListCategories returns the distinct categories currently in use
func (s *ProjectService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}
