package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDispatch(t *testing.T) {
	tests := []struct {
		name     string
		widget   Widget
		wantKind ViewKind
	}{
		{
			name:     "metric",
			widget:   Widget{ID: 1, Type: WidgetMetric, Metric: &MetricPayload{Value: 42}},
			wantKind: ViewMetric,
		},
		{
			name:     "chart",
			widget:   Widget{ID: 2, Type: WidgetChart, Chart: &ChartPayload{ChartType: ChartPie, Data: []ChartPoint{{Name: "a", Value: 1}}}},
			wantKind: ViewChart,
		},
		{
			name:     "activity feed",
			widget:   Widget{ID: 3, Type: WidgetActivity, Activity: &ActivityFeedPayload{Items: []FeedItem{{ID: "x"}}}},
			wantKind: ViewFeed,
		},
		{
			name:     "leaderboard",
			widget:   Widget{ID: 4, Type: WidgetLeaderboard, Leaderboard: &LeaderboardPayload{Entries: []LeaderboardEntry{{Name: "Ana"}}}},
			wantKind: ViewLeaderboard,
		},
		{
			name:     "unknown type renders nothing, not an error",
			widget:   Widget{ID: 5, Type: WidgetType("sparkline")},
			wantKind: ViewNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Render(tt.widget)
			assert.Equal(t, tt.wantKind, view.Kind)
			assert.Equal(t, tt.widget.ID, view.WidgetID)
		})
	}
}

func TestRenderDefaultsMissingPayloads(t *testing.T) {
	chart := Render(Widget{ID: 1, Type: WidgetChart})
	assert.Equal(t, ViewChart, chart.Kind)
	assert.NotNil(t, chart.Series)
	assert.Empty(t, chart.Series)

	feed := Render(Widget{ID: 2, Type: WidgetActivity})
	assert.NotNil(t, feed.Feed)
	assert.Empty(t, feed.Feed)

	metric := Render(Widget{ID: 3, Type: WidgetMetric})
	require.NotNil(t, metric.Metric)
	assert.Zero(t, metric.Metric.Value)
}

func metricWidget(id int) Widget {
	return Widget{ID: id, Type: WidgetMetric, Metric: &MetricPayload{}}
}

func chartWidget(id int) Widget {
	return Widget{ID: id, Type: WidgetChart, Chart: &ChartPayload{}}
}

func TestMetricsRowCap(t *testing.T) {
	widgets := []Widget{
		metricWidget(1), chartWidget(2), metricWidget(3),
		metricWidget(4), metricWidget(5), metricWidget(6),
	}

	row := MetricsRow(widgets, 4)
	require.Len(t, row, 4, "five metric widgets, only the first four shown")
	assert.Equal(t, []int{1, 3, 4, 5}, []int{row[0].ID, row[1].ID, row[2].ID, row[3].ID},
		"cap is a slice over the type-filtered sequence in catalog order")
}

func TestChartRowsSplit(t *testing.T) {
	widgets := []Widget{
		chartWidget(1), metricWidget(2), chartWidget(3), chartWidget(4), chartWidget(5),
	}

	top, bottom := ChartRows(widgets)
	require.Len(t, top, 2)
	require.Len(t, bottom, 2)
	assert.Equal(t, 1, top[0].ID)
	assert.Equal(t, 3, top[1].ID)
	assert.Equal(t, 4, bottom[0].ID)
	assert.Equal(t, 5, bottom[1].ID)

	top, bottom = ChartRows([]Widget{chartWidget(1)})
	assert.Len(t, top, 1)
	assert.Nil(t, bottom)
}

func TestBuildLayoutGroupsAndRenders(t *testing.T) {
	widgets := []Widget{
		metricWidget(1), metricWidget(2), metricWidget(3),
		chartWidget(4), chartWidget(5), chartWidget(6),
		{ID: 7, Type: WidgetActivity, Activity: &ActivityFeedPayload{Items: []FeedItem{{ID: "x"}}}},
		{ID: 8, Type: WidgetLeaderboard, Leaderboard: &LeaderboardPayload{Entries: []LeaderboardEntry{{Name: "Ana"}}}},
	}

	layout := BuildLayout(widgets, 2)
	require.Len(t, layout.Metrics, 2)
	assert.Equal(t, ViewMetric, layout.Metrics[0].Kind)
	require.Len(t, layout.ChartsTop, 2)
	require.Len(t, layout.ChartsBottom, 1)
	assert.Equal(t, 6, layout.ChartsBottom[0].WidgetID)
	require.Len(t, layout.Feeds, 1)
	assert.Equal(t, ViewFeed, layout.Feeds[0].Kind)
	require.Len(t, layout.Leaderboards, 1)
	assert.Equal(t, "Ana", layout.Leaderboards[0].Leaderboard[0].Name)
}
