// Package admin drives the project add/edit/delete workflow. State lives in
// a single controller with explicit transitions rather than ambient
// variables, so the workflow can be exercised in isolation.
//
// The controller assumes the single-threaded, event-driven execution of its
// caller; it is not safe for concurrent use.
package admin

import (
	"context"
	"fmt"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

// State is the controller's current position in the workflow.
type State int

const (
	// StateLoading is the initial state before the first list completes.
	StateLoading State = iota
	// StateIdle shows the list with no form open.
	StateIdle
	// StateFormCreate has the form open with empty defaults.
	StateFormCreate
	// StateFormEdit has the form open pre-populated from a record.
	StateFormEdit
	// StateError means the list could not be loaded; the message is
	// retained until dismissed or a retry succeeds.
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateIdle:
		return "idle"
	case StateFormCreate:
		return "form-create"
	case StateFormEdit:
		return "form-edit"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Store is the slice of the project service the controller needs.
type Store interface {
	List(ctx context.Context, f domain.ProjectFilters) ([]domain.Project, error)
	Create(ctx context.Context, data domain.CreateProjectData) (*domain.Project, error)
	Update(ctx context.Context, id string, data domain.UpdateProjectData) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// Controller is the admin workflow state machine.
type Controller struct {
	store Store

	state    State
	projects []domain.Project
	form     Form
	editing  string // id of the record being edited, "" for create

	pendingDelete string
	submitting    bool
	errMsg        string
}

// NewController returns a controller in StateLoading; call Load to populate it.
func NewController(store Store) *Controller {
	return &Controller{
		store: store,
		state: StateLoading,
	}
}

// State returns the controller's current state.
func (c *Controller) State() State { return c.state }

// Projects returns the list as of the last successful load.
func (c *Controller) Projects() []domain.Project { return c.projects }

// Form returns the open form for field edits. Only meaningful while a form
// is open.
func (c *Controller) Form() *Form { return &c.form }

// Err returns the retained error message, or "".
func (c *Controller) Err() string { return c.errMsg }

// PendingDelete returns the id awaiting delete confirmation, or "".
func (c *Controller) PendingDelete() string { return c.pendingDelete }

// Load fetches the full list from the store. On failure the controller moves
// to StateError and keeps the message until dismissed.
func (c *Controller) Load(ctx context.Context) {
	items, err := c.store.List(ctx, domain.ProjectFilters{})
	if err != nil {
		c.state = StateError
		c.errMsg = err.Error()
		return
	}
	c.projects = items
	c.state = StateIdle
	c.errMsg = ""
}

// OpenCreate opens the form with empty defaults.
func (c *Controller) OpenCreate() error {
	if c.state != StateIdle {
		return fmt.Errorf("cannot open form in state %s", c.state)
	}
	c.form = NewForm()
	c.editing = ""
	c.state = StateFormCreate
	return nil
}

// OpenEdit opens the form pre-populated from the listed record with the
// given id.
func (c *Controller) OpenEdit(id string) error {
	if c.state != StateIdle {
		return fmt.Errorf("cannot open form in state %s", c.state)
	}
	for _, p := range c.projects {
		if p.ID == id {
			c.form = FormFromProject(p)
			c.editing = id
			c.state = StateFormEdit
			return nil
		}
	}
	return fmt.Errorf("project %s is not in the current list", id)
}

// Cancel discards the open form without touching the store.
func (c *Controller) Cancel() {
	if c.state != StateFormCreate && c.state != StateFormEdit {
		return
	}
	c.form = Form{}
	c.editing = ""
	c.state = StateIdle
}

// Submit validates the form and sends it to the store. Validation or store
// failure keeps the form open with its contents intact so the user can
// retry. On success the form is discarded and the list is reloaded from the
// store, so the displayed list includes the server-assigned fields.
//
// A submit already in flight is rejected rather than issued twice.
func (c *Controller) Submit(ctx context.Context) error {
	if c.state != StateFormCreate && c.state != StateFormEdit {
		return fmt.Errorf("no form open in state %s", c.state)
	}
	if c.submitting {
		return fmt.Errorf("submit already in flight")
	}

	if err := c.form.Validate(); err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	var err error
	if c.state == StateFormEdit {
		_, err = c.store.Update(ctx, c.editing, c.form.updateData())
	} else {
		_, err = c.store.Create(ctx, c.form.createData())
	}
	if err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.form = Form{}
	c.editing = ""
	c.errMsg = ""
	c.Load(ctx)
	return nil
}

// RequestDelete records a delete request; nothing reaches the store until
// ConfirmDelete.
func (c *Controller) RequestDelete(id string) error {
	if c.state != StateIdle {
		return fmt.Errorf("cannot delete in state %s", c.state)
	}
	c.pendingDelete = id
	return nil
}

// CancelDelete drops the pending delete request.
func (c *Controller) CancelDelete() {
	c.pendingDelete = ""
}

// ConfirmDelete performs the pending delete. On success the list is
// reloaded; on failure the record is left untouched and the message shown.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	if c.pendingDelete == "" {
		return fmt.Errorf("no delete pending")
	}
	id := c.pendingDelete
	c.pendingDelete = ""

	if err := c.store.Delete(ctx, id); err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.Load(ctx)
	return nil
}

// DismissError clears the retained message. A dismissed load failure drops
// back to the list so the user can retry.
func (c *Controller) DismissError() {
	c.errMsg = ""
	if c.state == StateError {
		c.state = StateIdle
	}
}
