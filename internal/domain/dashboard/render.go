package dashboard

// ViewKind discriminates the rendered representation of a widget.
type ViewKind string

const (
	ViewMetric      ViewKind = "metric"
	ViewChart       ViewKind = "chart"
	ViewFeed        ViewKind = "feed"
	ViewLeaderboard ViewKind = "leaderboard"
	ViewNone        ViewKind = "none"
)

// RenderedView is the presentation contract handed to a front end. The
// concrete visual treatment is out of scope; this fixes which fields
// each variant receives.
type RenderedView struct {
	Kind        ViewKind           `json:"kind"`
	WidgetID    int                `json:"widget_id"`
	Title       string             `json:"title"`
	Metric      *MetricPayload     `json:"metric,omitempty"`
	ChartType   ChartType          `json:"chart_type,omitempty"`
	Series      []ChartPoint       `json:"series,omitempty"`
	Feed        []FeedItem         `json:"feed,omitempty"`
	Leaderboard []LeaderboardEntry `json:"leaderboard,omitempty"`
}

// Render maps a widget to its view. Dispatch is total over the type
// union; an unrecognized type renders an empty view rather than
// failing, and missing optional payloads default to empty values.
func Render(w Widget) RenderedView {
	switch w.Type {
	case WidgetMetric:
		metric := w.Metric
		if metric == nil {
			metric = &MetricPayload{}
		}
		return RenderedView{Kind: ViewMetric, WidgetID: w.ID, Title: w.Title, Metric: metric}

	case WidgetChart:
		chartType := ChartBar
		series := []ChartPoint{}
		if w.Chart != nil {
			chartType = w.Chart.ChartType
			if w.Chart.Data != nil {
				series = w.Chart.Data
			}
		}
		return RenderedView{Kind: ViewChart, WidgetID: w.ID, Title: w.Title, ChartType: chartType, Series: series}

	case WidgetActivity:
		items := []FeedItem{}
		if w.Activity != nil && w.Activity.Items != nil {
			items = w.Activity.Items
		}
		return RenderedView{Kind: ViewFeed, WidgetID: w.ID, Title: w.Title, Feed: items}

	case WidgetLeaderboard:
		entries := []LeaderboardEntry{}
		if w.Leaderboard != nil && w.Leaderboard.Entries != nil {
			entries = w.Leaderboard.Entries
		}
		return RenderedView{Kind: ViewLeaderboard, WidgetID: w.ID, Title: w.Title, Leaderboard: entries}
	}

	return RenderedView{Kind: ViewNone, WidgetID: w.ID, Title: w.Title}
}

// FilterByType returns the widgets of one type, preserving order.
func FilterByType(widgets []Widget, widgetType WidgetType) []Widget {
	out := make([]Widget, 0, len(widgets))
	for _, w := range widgets {
		if w.Type == widgetType {
			out = append(out, w)
		}
	}
	return out
}

// MetricsRow returns the first cap metric widgets. The cap is a
// deliberate display limit applied after type filtering, so a
// dashboard referencing more metric widgets still shows only the
// leading slice in original order.
func MetricsRow(widgets []Widget, cap int) []Widget {
	metrics := FilterByType(widgets, WidgetMetric)
	if cap >= 0 && len(metrics) > cap {
		metrics = metrics[:cap]
	}
	return metrics
}

// Layout is the row arrangement of a rendered dashboard: a capped
// metrics row, two chart rows, then full-width feed and leaderboard
// sections.
type Layout struct {
	Metrics      []RenderedView `json:"metrics"`
	ChartsTop    []RenderedView `json:"charts_top"`
	ChartsBottom []RenderedView `json:"charts_bottom"`
	Feeds        []RenderedView `json:"feeds"`
	Leaderboards []RenderedView `json:"leaderboards"`
}

// BuildLayout arranges widgets into rows and renders each one.
func BuildLayout(widgets []Widget, metricCap int) *Layout {
	top, bottom := ChartRows(widgets)
	return &Layout{
		Metrics:      renderAll(MetricsRow(widgets, metricCap)),
		ChartsTop:    renderAll(top),
		ChartsBottom: renderAll(bottom),
		Feeds:        renderAll(FilterByType(widgets, WidgetActivity)),
		Leaderboards: renderAll(FilterByType(widgets, WidgetLeaderboard)),
	}
}

func renderAll(widgets []Widget) []RenderedView {
	views := make([]RenderedView, 0, len(widgets))
	for _, w := range widgets {
		views = append(views, Render(w))
	}
	return views
}

// ChartRows splits the chart widgets into a top row (first two) and a
// bottom row (next two), mirroring the summary layout.
func ChartRows(widgets []Widget) (top, bottom []Widget) {
	charts := FilterByType(widgets, WidgetChart)
	if len(charts) > 2 {
		top = charts[:2]
		bottom = charts[2:]
		if len(bottom) > 2 {
			bottom = bottom[:2]
		}
		return top, bottom
	}
	return charts, nil
}
