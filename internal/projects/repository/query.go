package repository

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

// buildListQuery translates filters into a parameterized SELECT.
// "All" (or empty) category means no category filter; search matches
// title OR description case-insensitively.
func buildListQuery(f domain.ProjectFilters) (string, []any) {
	var (
		where []string
		args  []any
	)

	if f.Category != "" && f.Category != domain.CategoryAll {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		where = append(where, fmt.Sprintf("featured = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	q := `
SELECT ` + projectColumns + `
FROM projects`
	if len(where) > 0 {
		q += "\nWHERE " + strings.Join(where, " AND ")
	}
	q += "\nORDER BY created_at DESC;"

	return q, args
}

// buildUpdateSet renders the SET clause for the fields present in data.
// Callers must reject an empty update before calling.
func buildUpdateSet(data domain.UpdateProjectData) (string, []any) {
	var (
		set  []string
		args []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if data.Title != nil {
		add("title", *data.Title)
	}
	if data.Description != nil {
		add("description", *data.Description)
	}
	if data.LongDescription != nil {
		add("long_description", *data.LongDescription)
	}
	if data.ImageURL != nil {
		add("image_url", *data.ImageURL)
	}
	if data.TechStack != nil {
		add("tech_stack", pq.Array(*data.TechStack))
	}
	if data.LiveURL != nil {
		add("live_url", *data.LiveURL)
	}
	if data.GithubURL != nil {
		add("github_url", *data.GithubURL)
	}
	if data.Category != nil {
		add("category", *data.Category)
	}
	if data.Featured != nil {
		add("featured", *data.Featured)
	}

	return strings.Join(set, ", "), args
}
