package admin

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

// Form holds the project form's field values while the form is open.
// TechStack entries are identified by position only; empty entries are
// allowed and submitted as-is.
type Form struct {
	Title           string
	Description     string
	LongDescription string
	ImageURL        string
	TechStack       []string
	LiveURL         string
	GithubURL       string
	Category        string
	Featured        bool
}

// NewForm returns a form with the create defaults.
func NewForm() Form {
	return Form{
		Category:  domain.DefaultCategory,
		TechStack: []string{},
	}
}

// FormFromProject pre-populates a form for editing. Optional fields absent
// on the record come through as empty strings.
func FormFromProject(p domain.Project) Form {
	tech := make([]string, len(p.TechStack))
	copy(tech, p.TechStack)
	return Form{
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		ImageURL:        p.ImageURL,
		TechStack:       tech,
		LiveURL:         p.LiveURL,
		GithubURL:       p.GithubURL,
		Category:        p.Category,
		Featured:        p.Featured,
	}
}

// AddTech appends an empty tech-stack entry.
func (f *Form) AddTech() {
	f.TechStack = append(f.TechStack, "")
}

// SetTech replaces the entry at position i.
func (f *Form) SetTech(i int, value string) error {
	if i < 0 || i >= len(f.TechStack) {
		return fmt.Errorf("tech stack index %d out of range", i)
	}
	f.TechStack[i] = value
	return nil
}

// RemoveTech deletes the entry at position i, shifting later entries up.
func (f *Form) RemoveTech(i int) error {
	if i < 0 || i >= len(f.TechStack) {
		return fmt.Errorf("tech stack index %d out of range", i)
	}
	f.TechStack = append(f.TechStack[:i], f.TechStack[i+1:]...)
	return nil
}

// Validate enforces the required-field semantics of the form: title and
// description must be present. Everything else is submitted as typed.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Description, validation.Required),
	)
}

func (f Form) createData() domain.CreateProjectData {
	return domain.CreateProjectData{
		Title:           f.Title,
		Description:     f.Description,
		LongDescription: f.LongDescription,
		ImageURL:        f.ImageURL,
		TechStack:       f.TechStack,
		LiveURL:         f.LiveURL,
		GithubURL:       f.GithubURL,
		Category:        f.Category,
		Featured:        f.Featured,
	}
}

// updateData submits the whole form; the edit form was pre-populated from
// the record, so every field is considered specified.
func (f Form) updateData() domain.UpdateProjectData {
	tech := f.TechStack
	return domain.UpdateProjectData{
		Title:           &f.Title,
		Description:     &f.Description,
		LongDescription: &f.LongDescription,
		ImageURL:        &f.ImageURL,
		TechStack:       &tech,
		LiveURL:         &f.LiveURL,
		GithubURL:       &f.GithubURL,
		Category:        &f.Category,
		Featured:        &f.Featured,
	}
}
