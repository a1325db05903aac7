package dashboard

import (
	"context"
	"testing"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (Service, *Catalog, *Registry) {
	t.Helper()
	catalog := NewCatalog()
	catalog.BuildDefaults(catalogActivities(), nil)
	registry := NewRegistry()
	return NewService(catalog, registry, activity.NewRepository(), nil, zap.NewNop()), catalog, registry
}

func TestAddWidgetRefMissingDashboard(t *testing.T) {
	registry := NewRegistry()
	err := registry.AddWidgetRef(uuid.New(), widgetIDTotalHours)
	assert.ErrorIs(t, err, ErrDashboardNotFound)
}

func TestGetDefaultFallback(t *testing.T) {
	registry := NewRegistry()
	assert.Nil(t, registry.GetDefault(), "empty registry has no default")

	first := registry.CreateDashboard("Q1 Review", "quarterly numbers")
	registry.CreateDashboard("Scratch", "")

	// Nothing is marked default: first-created wins, deterministically.
	got := registry.GetDefault()
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	marked := registry.SeedDefault("Company Overview", "", []int{widgetIDTotalHours})
	got = registry.GetDefault()
	require.NotNil(t, got)
	assert.Equal(t, marked.ID, got.ID)
	assert.True(t, got.IsDefault)
}

func TestWidgetsForPreservesOrder(t *testing.T) {
	svc, _, registry := newTestService(t)
	ctx := context.Background()

	d := registry.CreateDashboard("Ops", "")
	refs := []int{widgetIDMonthlyTrend, widgetIDTotalHours, widgetIDLeaderboard}
	for _, id := range refs {
		require.NoError(t, svc.AddWidgetToDashboard(ctx, d.ID, id))
	}

	widgets, err := svc.WidgetsFor(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, widgets, len(refs))
	for i, w := range widgets {
		assert.Equal(t, refs[i], w.ID)
	}
}

func TestWidgetsForFiltersUnresolvableIDs(t *testing.T) {
	svc, _, registry := newTestService(t)
	ctx := context.Background()

	d := registry.CreateDashboard("Ops", "")
	require.NoError(t, registry.AddWidgetRef(d.ID, widgetIDTotalHours))
	require.NoError(t, registry.AddWidgetRef(d.ID, 9999)) // dangling reference

	widgets, err := svc.WidgetsFor(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, widgets, 1)
	assert.Equal(t, widgetIDTotalHours, widgets[0].ID)
}

func TestWidgetsForEmptyDashboard(t *testing.T) {
	svc, _, registry := newTestService(t)
	ctx := context.Background()

	d := registry.CreateDashboard("Q1 Review", "no widgets yet")
	widgets, err := svc.WidgetsFor(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, widgets)
}

func TestWidgetsForMissingDashboard(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.WidgetsFor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDashboardNotFound)
}

func TestAddWidgetToDashboardUnknownWidget(t *testing.T) {
	svc, _, registry := newTestService(t)
	d := registry.CreateDashboard("Ops", "")
	err := svc.AddWidgetToDashboard(context.Background(), d.ID, 424242)
	assert.ErrorIs(t, err, ErrWidgetNotFound)
}
