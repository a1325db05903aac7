package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds the named dashboards. Dashboards are created and
// mutated by appending widget references; the current design never
// reorders or deletes them.
type Registry struct {
	mu         sync.RWMutex
	dashboards []*Dashboard // creation order
	byID       map[uuid.UUID]*Dashboard
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[uuid.UUID]*Dashboard)}
}

// CreateDashboard creates an empty, non-default dashboard.
func (r *Registry) CreateDashboard(name, description string) *Dashboard {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	d := &Dashboard{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		WidgetIDs:   []int{},
		IsDefault:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.dashboards = append(r.dashboards, d)
	r.byID[d.ID] = d
	return d
}

// SeedDefault installs a pre-built dashboard marked as default. Used at
// startup to register the built-in widget layout.
func (r *Registry) SeedDefault(name, description string, widgetIDs []int) *Dashboard {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	d := &Dashboard{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		WidgetIDs:   append([]int{}, widgetIDs...),
		IsDefault:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.dashboards = append(r.dashboards, d)
	r.byID[d.ID] = d
	return d
}

// AddWidgetRef appends a widget id to a dashboard's reference list.
// A missing dashboard is an explicit error, not a silent no-op.
func (r *Registry) AddWidgetRef(dashboardID uuid.UUID, widgetID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[dashboardID]
	if !ok {
		return ErrDashboardNotFound
	}
	d.WidgetIDs = append(d.WidgetIDs, widgetID)
	d.UpdatedAt = time.Now()
	return nil
}

// Get returns a dashboard by id.
func (r *Registry) Get(dashboardID uuid.UUID) (*Dashboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[dashboardID]
	if !ok {
		return nil, ErrDashboardNotFound
	}
	clone := *d
	clone.WidgetIDs = append([]int{}, d.WidgetIDs...)
	return &clone, nil
}

// List returns all dashboards in creation order.
func (r *Registry) List() []Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Dashboard, 0, len(r.dashboards))
	for _, d := range r.dashboards {
		clone := *d
		clone.WidgetIDs = append([]int{}, d.WidgetIDs...)
		out = append(out, clone)
	}
	return out
}

// GetDefault returns the first dashboard marked default, falling back
// deterministically to the first-created dashboard when none is marked.
// Returns nil when the registry is empty.
func (r *Registry) GetDefault() *Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.dashboards {
		if d.IsDefault {
			clone := *d
			clone.WidgetIDs = append([]int{}, d.WidgetIDs...)
			return &clone
		}
	}
	if len(r.dashboards) > 0 {
		clone := *r.dashboards[0]
		clone.WidgetIDs = append([]int{}, r.dashboards[0].WidgetIDs...)
		return &clone
	}
	return nil
}
