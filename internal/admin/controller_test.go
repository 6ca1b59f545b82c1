package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitwall-dev/portfolio-backend/internal/projects/domain"
)

// fakeStore is an in-memory stand-in for the project service.
type fakeStore struct {
	projects []domain.Project
	nextID   int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeStore) List(ctx context.Context, _ domain.ProjectFilters) ([]domain.Project, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Project, len(f.projects))
	copy(out, f.projects)
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, data domain.CreateProjectData) (*domain.Project, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	p := domain.Project{
		ID:          fmt.Sprintf("p%d", f.nextID),
		Title:       data.Title,
		Description: data.Description,
		TechStack:   data.TechStack,
		Category:    data.Category,
		Featured:    data.Featured,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.projects = append([]domain.Project{p}, f.projects...)
	return &p, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, data domain.UpdateProjectData) (*domain.Project, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.projects {
		if f.projects[i].ID == id {
			if data.Title != nil {
				f.projects[i].Title = *data.Title
			}
			if data.Featured != nil {
				f.projects[i].Featured = *data.Featured
			}
			f.projects[i].UpdatedAt = time.Now()
			p := f.projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func seededStore() *fakeStore {
	return &fakeStore{
		projects: []domain.Project{
			{ID: "p1", Title: "Social Media Dashboard", Description: "Analytics", Category: "Full Stack", TechStack: []string{"Go", "React"}, Featured: true},
			{ID: "p2", Title: "REST API Service", Description: "Service", Category: "Backend", TechStack: []string{"Go"}},
		},
		nextID: 2,
	}
}

func TestController_Load(t *testing.T) {
	t.Run("successful load reaches idle", func(t *testing.T) {
		store := seededStore()
		c := NewController(store)
		assert.Equal(t, StateLoading, c.State())

		c.Load(context.Background())
		assert.Equal(t, StateIdle, c.State())
		assert.Len(t, c.Projects(), 2)
		assert.Empty(t, c.Err())
	})

	t.Run("failed load retains the message until dismissed", func(t *testing.T) {
		store := &fakeStore{listErr: errors.New("connection refused")}
		c := NewController(store)

		c.Load(context.Background())
		assert.Equal(t, StateError, c.State())
		assert.Equal(t, "connection refused", c.Err())

		c.DismissError()
		assert.Equal(t, StateIdle, c.State())
		assert.Empty(t, c.Err())
	})
}

func TestController_OpenCreate(t *testing.T) {
	store := seededStore()
	c := NewController(store)
	c.Load(context.Background())

	require.NoError(t, c.OpenCreate())
	assert.Equal(t, StateFormCreate, c.State())

	form := c.Form()
	assert.Empty(t, form.Title)
	assert.Empty(t, form.Description)
	assert.Equal(t, domain.DefaultCategory, form.Category)
	assert.False(t, form.Featured)
	assert.Empty(t, form.TechStack)
}

func TestController_OpenEdit(t *testing.T) {
	store := seededStore()
	c := NewController(store)
	c.Load(context.Background())

	require.NoError(t, c.OpenEdit("p1"))
	assert.Equal(t, StateFormEdit, c.State())

	form := c.Form()
	assert.Equal(t, "Social Media Dashboard", form.Title)
	assert.Equal(t, []string{"Go", "React"}, form.TechStack)
	assert.True(t, form.Featured)

	t.Run("unknown id is rejected", func(t *testing.T) {
		c := NewController(store)
		c.Load(context.Background())
		assert.Error(t, c.OpenEdit("nope"))
		assert.Equal(t, StateIdle, c.State())
	})
}

func TestController_CancelTouchesNothing(t *testing.T) {
	store := seededStore()
	c := NewController(store)
	c.Load(context.Background())
	callsAfterLoad := store.listCalls

	require.NoError(t, c.OpenEdit("p1"))
	c.Form().Title = "Changed but discarded"
	c.Cancel()

	assert.Equal(t, StateIdle, c.State())
	assert.Zero(t, store.updateCalls)
	assert.Zero(t, store.createCalls)
	assert.Equal(t, callsAfterLoad, store.listCalls)
	assert.Equal(t, "Social Media Dashboard", store.projects[0].Title)
}

func TestController_SubmitCreate(t *testing.T) {
	t.Run("empty title never reaches the store", func(t *testing.T) {
		store := seededStore()
		c := NewController(store)
		c.Load(context.Background())

		require.NoError(t, c.OpenCreate())
		c.Form().Description = "has description, no title"

		err := c.Submit(context.Background())
		assert.Error(t, err)
		assert.Zero(t, store.createCalls)
		assert.Equal(t, StateFormCreate, c.State())
		assert.NotEmpty(t, c.Err())
	})

	t.Run("successful create reloads the list and closes the form", func(t *testing.T) {
		store := seededStore()
		c := NewController(store)
		c.Load(context.Background())

		require.NoError(t, c.OpenCreate())
		form := c.Form()
		form.Title = "X"
		form.Description = "Y"
		form.Category = "Backend"
		form.AddTech()
		form.AddTech()
		require.NoError(t, form.SetTech(0, "A"))
		require.NoError(t, form.SetTech(1, "B"))

		require.NoError(t, c.Submit(context.Background()))
		assert.Equal(t, StateIdle, c.State())
		assert.Equal(t, 1, store.createCalls)
		assert.Len(t, c.Projects(), 3)
		assert.Equal(t, []string{"A", "B"}, store.projects[0].TechStack)
	})

	t.Run("store failure keeps the form contents for retry", func(t *testing.T) {
		store := seededStore()
		store.createErr = errors.New("duplicate key value")
		c := NewController(store)
		c.Load(context.Background())

		require.NoError(t, c.OpenCreate())
		c.Form().Title = "X"
		c.Form().Description = "Y"

		err := c.Submit(context.Background())
		assert.Error(t, err)
		assert.Equal(t, StateFormCreate, c.State())
		assert.Equal(t, "X", c.Form().Title)
		assert.Equal(t, "duplicate key value", c.Err())

		// Retry after the store recovers.
		store.createErr = nil
		require.NoError(t, c.Submit(context.Background()))
		assert.Equal(t, StateIdle, c.State())
	})
}

// reentrantStore issues a second Submit from inside Create, the way a
// double-click lands while the first request is still running.
type reentrantStore struct {
	fakeStore
	ctrl      *Controller
	secondErr error
}

func (s *reentrantStore) Create(ctx context.Context, data domain.CreateProjectData) (*domain.Project, error) {
	s.secondErr = s.ctrl.Submit(ctx)
	return s.fakeStore.Create(ctx, data)
}

func TestController_SubmitWhileInFlight(t *testing.T) {
	store := &reentrantStore{}
	c := NewController(store)
	store.ctrl = c
	c.Load(context.Background())

	require.NoError(t, c.OpenCreate())
	c.Form().Title = "Weather App"
	c.Form().Description = "Forecasts"

	require.NoError(t, c.Submit(context.Background()))

	// The second submit is rejected; only one create reaches the store.
	require.Error(t, store.secondErr)
	assert.EqualError(t, store.secondErr, "submit already in flight")
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_SubmitEdit(t *testing.T) {
	store := seededStore()
	c := NewController(store)
	c.Load(context.Background())

	require.NoError(t, c.OpenEdit("p2"))
	c.Form().Featured = true

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 1, store.updateCalls)

	for _, p := range c.Projects() {
		if p.ID == "p2" {
			assert.True(t, p.Featured)
		}
	}
}

func TestController_Delete(t *testing.T) {
	t.Run("nothing reaches the store before confirmation", func(t *testing.T) {
		store := seededStore()
		c := NewController(store)
		c.Load(context.Background())

		require.NoError(t, c.RequestDelete("p1"))
		assert.Equal(t, "p1", c.PendingDelete())
		assert.Zero(t, store.deleteCalls)

		c.CancelDelete()
		assert.Empty(t, c.PendingDelete())
		assert.Zero(t, store.deleteCalls)
		assert.Len(t, store.projects, 2)
	})

	t.Run("confirmed delete removes the record and reloads", func(t *testing.T) {
		store := seededStore()
		c := NewController(store)
		c.Load(context.Background())

		require.NoError(t, c.RequestDelete("p1"))
		require.NoError(t, c.ConfirmDelete(context.Background()))

		assert.Equal(t, 1, store.deleteCalls)
		assert.Len(t, c.Projects(), 1)
		assert.Equal(t, "p2", c.Projects()[0].ID)
	})

	t.Run("failed delete leaves the record untouched", func(t *testing.T) {
		store := seededStore()
		store.deleteErr = errors.New("permission denied")
		c := NewController(store)
		c.Load(context.Background())

		require.NoError(t, c.RequestDelete("p1"))
		err := c.ConfirmDelete(context.Background())
		assert.Error(t, err)
		assert.Equal(t, "permission denied", c.Err())
		assert.Len(t, store.projects, 2)
	})

	t.Run("confirm without request is rejected", func(t *testing.T) {
		store := seededStore()
		c := NewController(store)
		c.Load(context.Background())

		assert.Error(t, c.ConfirmDelete(context.Background()))
		assert.Zero(t, store.deleteCalls)
	})
}

func TestForm_TechStackEditor(t *testing.T) {
	form := NewForm()

	form.AddTech()
	form.AddTech()
	form.AddTech()
	assert.Equal(t, []string{"", "", ""}, form.TechStack)

	require.NoError(t, form.SetTech(0, "Go"))
	require.NoError(t, form.SetTech(2, "Postgres"))
	assert.Equal(t, []string{"Go", "", "Postgres"}, form.TechStack)

	// Position is the only identity: removing shifts later entries up.
	require.NoError(t, form.RemoveTech(1))
	assert.Equal(t, []string{"Go", "Postgres"}, form.TechStack)

	assert.Error(t, form.SetTech(5, "x"))
	assert.Error(t, form.RemoveTech(-1))
}
