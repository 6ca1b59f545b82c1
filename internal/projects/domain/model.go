package domain

import "time"

// Project represents a single showcased work item on the portfolio.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	TechStack       []string  `json:"tech_stack"`
	LiveURL         string    `json:"live_url,omitempty"`
	GithubURL       string    `json:"github_url,omitempty"`
	Category        string    `json:"category"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateProjectData is the input for creating a project. The store assigns
// id, created_at and updated_at.
type CreateProjectData struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	TechStack       []string `json:"tech_stack"`
	LiveURL         string   `json:"live_url,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
	Category        string   `json:"category"`
	Featured        bool     `json:"featured"`
}

// UpdateProjectData carries a partial field set for an update. Nil fields are
// left unchanged by the store.
type UpdateProjectData struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LongDescription *string   `json:"long_description,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	TechStack       *[]string `json:"tech_stack,omitempty"`
	LiveURL         *string   `json:"live_url,omitempty"`
	GithubURL       *string   `json:"github_url,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
}

// Empty reports whether no field is set at all.
func (d UpdateProjectData) Empty() bool {
	return d.Title == nil && d.Description == nil && d.LongDescription == nil &&
		d.ImageURL == nil && d.TechStack == nil && d.LiveURL == nil &&
		d.GithubURL == nil && d.Category == nil && d.Featured == nil
}

// ProjectFilters narrows a listing. CategoryAll (or an empty category) means
// no category filter. Featured filters on exact boolean match when set.
// Search matches title OR description, case-insensitively.
type ProjectFilters struct {
	Category string
	Featured *bool
	Search   string
}

// CategoryAll is the sentinel meaning "do not filter by category".
const CategoryAll = "All"

// DefaultCategory is the form default for new projects.
const DefaultCategory = "Full Stack"

// Categories is the conventional category set shown by the UI. The store
// accepts any text; this list is a presentation convention, not a constraint.
var Categories = []string{"Full Stack", "Frontend", "Backend", "Mobile", "DevOps"}
