package dashboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
)

// Built-in widget ids. Rebuilding the catalog must never reassign them:
// dashboards hold these ids by reference.
const (
	widgetIDTotalHours     = 1
	widgetIDTotalRaised    = 2
	widgetIDTotalPoints    = 3
	widgetIDActivityCount  = 4
	widgetIDMonthlyTrend   = 5
	widgetIDTypeBreakdown  = 6
	widgetIDRecentActivity = 7
	widgetIDLeaderboard    = 8
)

// Catalog is the process-wide widget registry. Widgets are appended and
// never removed; a widget no dashboard references is valid but inert.
type Catalog struct {
	mu      sync.RWMutex
	widgets []Widget
	byID    map[int]int // id -> index into widgets
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[int]int)}
}

// BuildDefaults constructs the built-in widgets from the aggregator
// output. Calling it again refreshes payloads in place without changing
// any ids, so dashboard references stay valid.
func (c *Catalog) BuildDefaults(activities []activity.Activity, leaderboard []LeaderboardEntry) {
	counts := activity.CountsByType(activities)
	hours := activity.HoursByType(activities)
	amounts := activity.AmountsByType(activities)
	monthly := activity.MonthlySeries(activities, 6)

	var totalHours, totalRaised float64
	for _, v := range hours {
		totalHours += v
	}
	for _, v := range amounts {
		totalRaised += v
	}

	trend := make([]ChartPoint, 0, len(monthly))
	for _, bucket := range monthly {
		trend = append(trend, ChartPoint{Name: bucket.Month, Value: float64(bucket.Count)})
	}

	breakdown := make([]ChartPoint, 0, len(counts))
	for _, t := range []activity.Type{activity.TypeVolunteer, activity.TypeFundraising, activity.TypeLearning, activity.TypeOther} {
		if n, ok := counts[t]; ok {
			breakdown = append(breakdown, ChartPoint{Name: string(t), Value: float64(n)})
		}
	}

	feed := make([]FeedItem, 0, 5)
	for i, a := range activities {
		if i == 5 {
			break
		}
		feed = append(feed, FeedItem{
			ID:     a.ID.String(),
			User:   a.UserID.String(),
			Action: fmt.Sprintf("logged %q", a.Title),
			Time:   a.Date.Format(time.RFC3339),
		})
	}

	builtins := []Widget{
		{ID: widgetIDTotalHours, Type: WidgetMetric, Title: "Volunteer Hours",
			Metric: &MetricPayload{Value: totalHours, Suffix: "h", Period: "all time"}},
		{ID: widgetIDTotalRaised, Type: WidgetMetric, Title: "Funds Raised",
			Metric: &MetricPayload{Value: totalRaised, Prefix: "$", Period: "all time"}},
		{ID: widgetIDTotalPoints, Type: WidgetMetric, Title: "Impact Points",
			Metric: &MetricPayload{Value: float64(activity.TotalPoints(activities)), Period: "all time"}},
		{ID: widgetIDActivityCount, Type: WidgetMetric, Title: "Activities Logged",
			Metric: &MetricPayload{Value: float64(len(activities)), Period: "all time"}},
		{ID: widgetIDMonthlyTrend, Type: WidgetChart, Title: "Monthly Activity",
			Chart: &ChartPayload{ChartType: ChartArea, Data: trend}},
		{ID: widgetIDTypeBreakdown, Type: WidgetChart, Title: "Impact by Type",
			Chart: &ChartPayload{ChartType: ChartPie, Data: breakdown}},
		{ID: widgetIDRecentActivity, Type: WidgetActivity, Title: "Recent Activity",
			Activity: &ActivityFeedPayload{Items: feed}},
		{ID: widgetIDLeaderboard, Type: WidgetLeaderboard, Title: "Top Contributors",
			Leaderboard: &LeaderboardPayload{Entries: leaderboard}},
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range builtins {
		if idx, exists := c.byID[w.ID]; exists {
			c.widgets[idx] = w
			continue
		}
		c.byID[w.ID] = len(c.widgets)
		c.widgets = append(c.widgets, w)
	}
}

// Add appends a user-created widget with the next unused id and an
// empty type-appropriate payload. When seed is non-nil its payload is
// used instead (the "seed from aggregated data" opt-in).
func (c *Catalog) Add(widgetType WidgetType, title string, seed *Widget) (Widget, error) {
	if !widgetType.IsValid() {
		return Widget{}, ErrInvalidWidgetType
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := 0
	for id := range c.byID {
		if id > next {
			next = id
		}
	}
	next++

	w := Widget{ID: next, Type: widgetType, Title: title}
	if seed != nil && seed.Type == widgetType {
		w.Metric = seed.Metric
		w.Chart = seed.Chart
		w.Activity = seed.Activity
		w.Leaderboard = seed.Leaderboard
	} else {
		switch widgetType {
		case WidgetMetric:
			w.Metric = &MetricPayload{}
		case WidgetChart:
			w.Chart = &ChartPayload{ChartType: ChartBar, Data: []ChartPoint{}}
		case WidgetActivity:
			w.Activity = &ActivityFeedPayload{Items: []FeedItem{}}
		case WidgetLeaderboard:
			w.Leaderboard = &LeaderboardPayload{Entries: []LeaderboardEntry{}}
		}
	}

	c.byID[w.ID] = len(c.widgets)
	c.widgets = append(c.widgets, w)
	return w, nil
}

// Get returns the widget with the given id.
func (c *Catalog) Get(id int) (Widget, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok {
		return Widget{}, false
	}
	return c.widgets[idx], true
}

// List returns all widgets in catalog order.
func (c *Catalog) List() []Widget {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Widget, len(c.widgets))
	copy(out, c.widgets)
	return out
}
