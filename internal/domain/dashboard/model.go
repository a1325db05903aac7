package dashboard

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrWidgetNotFound    = errors.New("widget not found")
	ErrInvalidWidgetType = errors.New("invalid widget type")
)

// WidgetType is the closed set of widget kinds.
type WidgetType string

const (
	WidgetMetric      WidgetType = "metric"
	WidgetChart       WidgetType = "chart"
	WidgetActivity    WidgetType = "activity"
	WidgetLeaderboard WidgetType = "leaderboard"
)

func (t WidgetType) IsValid() bool {
	switch t {
	case WidgetMetric, WidgetChart, WidgetActivity, WidgetLeaderboard:
		return true
	}
	return false
}

// ChartType is the supported chart renderings.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

// MetricPayload is the payload of a metric widget.
type MetricPayload struct {
	Value  float64  `json:"value"`
	Prefix string   `json:"prefix,omitempty"`
	Suffix string   `json:"suffix,omitempty"`
	Change *float64 `json:"change,omitempty"` // percentage delta vs Period
	Period string   `json:"period,omitempty"` // comparison label
}

// ChartPoint is one category/value pair of a chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartPayload is the payload of a chart widget.
type ChartPayload struct {
	ChartType ChartType    `json:"chart_type"`
	Data      []ChartPoint `json:"data"`
}

// FeedItem is one rendered activity-feed row. It is a snapshot, not a
// live link into the activity store.
type FeedItem struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"`
}

// ActivityFeedPayload is the payload of an activity widget.
type ActivityFeedPayload struct {
	Items []FeedItem `json:"items"`
}

// LeaderboardEntry is one scored row; ordering is the caller's job.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Avatar string `json:"avatar,omitempty"`
}

// LeaderboardPayload is the payload of a leaderboard widget.
type LeaderboardPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// Widget is a polymorphic dashboard display unit. Type discriminates
// which payload pointer is set; exactly one is non-nil for a
// well-formed widget.
type Widget struct {
	ID          int                  `json:"id"`
	Type        WidgetType           `json:"type"`
	Title       string               `json:"title"`
	Metric      *MetricPayload       `json:"metric,omitempty"`
	Chart       *ChartPayload        `json:"chart,omitempty"`
	Activity    *ActivityFeedPayload `json:"activity,omitempty"`
	Leaderboard *LeaderboardPayload  `json:"leaderboard,omitempty"`
}

// Dashboard is a named, ordered reference list into the widget catalog.
type Dashboard struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	WidgetIDs   []int     `json:"widgets"` // display order
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
