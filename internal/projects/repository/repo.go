package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

const projectColumns = `id, title, description, long_description, image_url, tech_stack, live_url, github_url, category, featured, created_at, updated_at`

// ProjectRepository provides persistence operations for projects.
// Each operation is a single round trip to the store; nothing is cached.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns projects matching the given filters, newest first.
func (r *ProjectRepository) List(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error) {
	q, args := buildListQuery(f)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFeatured returns all featured projects, newest first.
func (r *ProjectRepository) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	featured := true
	return r.List(ctx, domain.ProjectFilters{Featured: &featured})
}

// Get returns the project with the given id.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	q := `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new project. The store assigns id and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, data domain.CreateProjectData) (*domain.Project, error) {
	if strings.TrimSpace(data.Title) == "" || strings.TrimSpace(data.Description) == "" {
		return nil, domain.ErrMissingTitle
	}

	q := `
INSERT INTO projects (title, description, long_description, image_url, tech_stack, live_url, github_url, category, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + projectColumns + `;
`
	return scanProject(r.db.QueryRowContext(ctx, q,
		data.Title,
		data.Description,
		data.LongDescription,
		data.ImageURL,
		pq.Array(data.TechStack),
		data.LiveURL,
		data.GithubURL,
		data.Category,
		data.Featured,
	))
}

// Update applies a partial field set to the project with the given id and
// returns the updated record. Unset fields are left unchanged.
func (r *ProjectRepository) Update(ctx context.Context, id string, data domain.UpdateProjectData) (*domain.Project, error) {
	if data.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	set, args := buildUpdateSet(data)
	args = append(args, id)

	q := fmt.Sprintf(`
UPDATE projects
SET %s, updated_at = now()
WHERE id = $%d
RETURNING `+projectColumns+`;
`, set, len(args))

	p, err := scanProject(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the project permanently. There is no soft delete.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	const q = `
DELETE FROM projects
WHERE id = $1;
`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListCategories returns the distinct category values currently present,
// alphabetically ordered.
func (r *ProjectRepository) ListCategories(ctx context.Context) ([]string, error) {
	const q = `
SELECT DISTINCT category
FROM projects
ORDER BY category;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, 8)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.LongDescription,
		&p.ImageURL,
		pq.Array(&p.TechStack),
		&p.LiveURL,
		&p.GithubURL,
		&p.Category,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return &p, nil
}
