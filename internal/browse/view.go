// Package browse is the read-only projection over the project store for
// visitors: the featured strip plus the category-filtered grid.
package browse

import (
	"context"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

// Lister is the slice of the project service the view needs. No write
// operation is reachable from here.
type Lister interface {
	List(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
}

// View holds the listing page's state: the featured subset loaded once, and
// the grid reloaded whenever the category selection changes.
type View struct {
	svc Lister

	featured []domain.Project
	items    []domain.Project
	category string
	errMsg   string
}

func NewView(svc Lister) *View {
	return &View{
		svc:      svc,
		category: domain.CategoryAll,
	}
}

// Load fetches the featured subset and the unfiltered grid.
func (v *View) Load(ctx context.Context) error {
	featured, err := v.svc.ListFeatured(ctx)
	if err != nil {
		v.errMsg = err.Error()
		return err
	}
	v.featured = featured
	return v.SelectCategory(ctx, domain.CategoryAll)
}

// SelectCategory reloads the grid for the given category ("All" clears the
// filter). The featured strip is not reloaded.
func (v *View) SelectCategory(ctx context.Context, category string) error {
	items, err := v.svc.List(ctx, domain.ProjectFilters{Category: category})
	if err != nil {
		v.errMsg = err.Error()
		return err
	}
	v.category = category
	v.items = items
	v.errMsg = ""
	return nil
}

// ResetFilter returns the grid to the unfiltered listing; it backs the
// empty-state control.
func (v *View) ResetFilter(ctx context.Context) error {
	return v.SelectCategory(ctx, domain.CategoryAll)
}

// Empty reports whether the current selection matched nothing.
func (v *View) Empty() bool { return len(v.items) == 0 }

// Featured returns the featured subset.
func (v *View) Featured() []domain.Project { return v.featured }

// Items returns the grid for the current selection.
func (v *View) Items() []domain.Project { return v.items }

// Category returns the current selection.
func (v *View) Category() string { return v.category }

// Err returns the last load error message, or "".
func (v *View) Err() string { return v.errMsg }
