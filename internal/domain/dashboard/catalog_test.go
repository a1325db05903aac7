package dashboard

import (
	"testing"
	"time"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func catalogActivities() []activity.Activity {
	return []activity.Activity{
		{ID: uuid.New(), Type: activity.TypeVolunteer, Title: "Park cleanup",
			Hours: floatPtr(4), Points: 40, Date: time.Now()},
		{ID: uuid.New(), Type: activity.TypeFundraising, Title: "Bake sale",
			AmountRaised: floatPtr(250), Points: 25, Date: time.Now()},
	}
}

func TestBuildDefaultsStableIDs(t *testing.T) {
	c := NewCatalog()
	c.BuildDefaults(catalogActivities(), nil)

	first := c.List()
	require.NotEmpty(t, first)
	ids := make([]int, 0, len(first))
	for _, w := range first {
		ids = append(ids, w.ID)
	}

	// Rebuilding with different data refreshes payloads but keeps ids.
	c.BuildDefaults(nil, nil)
	second := c.List()
	require.Len(t, second, len(first))
	for i, w := range second {
		assert.Equal(t, ids[i], w.ID)
	}

	hoursWidget, ok := c.Get(widgetIDTotalHours)
	require.True(t, ok)
	assert.Zero(t, hoursWidget.Metric.Value, "payload refreshed from empty store")
}

func TestBuildDefaultsPayloads(t *testing.T) {
	c := NewCatalog()
	c.BuildDefaults(catalogActivities(), []LeaderboardEntry{{ID: "u1", Name: "Ana", Score: 65}})

	hours, ok := c.Get(widgetIDTotalHours)
	require.True(t, ok)
	assert.Equal(t, 4.0, hours.Metric.Value)

	raised, ok := c.Get(widgetIDTotalRaised)
	require.True(t, ok)
	assert.Equal(t, 250.0, raised.Metric.Value)

	trend, ok := c.Get(widgetIDMonthlyTrend)
	require.True(t, ok)
	assert.Len(t, trend.Chart.Data, 6)

	board, ok := c.Get(widgetIDLeaderboard)
	require.True(t, ok)
	require.Len(t, board.Leaderboard.Entries, 1)
	assert.Equal(t, "Ana", board.Leaderboard.Entries[0].Name)
}

func TestAddAssignsNextID(t *testing.T) {
	c := NewCatalog()
	c.BuildDefaults(catalogActivities(), nil)

	maxID := 0
	for _, w := range c.List() {
		if w.ID > maxID {
			maxID = w.ID
		}
	}

	w, err := c.Add(WidgetMetric, "Custom metric", nil)
	require.NoError(t, err)
	assert.Equal(t, maxID+1, w.ID)
	require.NotNil(t, w.Metric)
	assert.Zero(t, w.Metric.Value, "unseeded widget starts empty")

	w2, err := c.Add(WidgetChart, "Custom chart", nil)
	require.NoError(t, err)
	assert.Equal(t, maxID+2, w2.ID)
	require.NotNil(t, w2.Chart)
	assert.Empty(t, w2.Chart.Data)

	_, err = c.Add(WidgetType("gauge"), "nope", nil)
	assert.ErrorIs(t, err, ErrInvalidWidgetType)
}

func TestAddSeededWidget(t *testing.T) {
	c := NewCatalog()
	seed := &Widget{Type: WidgetMetric, Metric: &MetricPayload{Value: 12, Suffix: "h"}}

	w, err := c.Add(WidgetMetric, "Seeded", seed)
	require.NoError(t, err)
	assert.Equal(t, 12.0, w.Metric.Value)
}
