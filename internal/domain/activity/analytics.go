package activity

import (
	"time"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/logger"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

// timeNow is swapped out in tests to pin the trailing window.
var timeNow = time.Now

// MonthBucket is one entry of the trailing monthly series.
type MonthBucket struct {
	Month  string  `json:"month"` // short month name, e.g. "Jan"
	Count  int     `json:"count"`
	Points int     `json:"points"`
	Hours  float64 `json:"hours"`
	Amount float64 `json:"amount"`
}

// CountsByType tallies activities per type.
func CountsByType(activities []Activity) map[Type]int {
	counts := make(map[Type]int)
	for _, a := range activities {
		counts[a.Type]++
	}
	return counts
}

// HoursByType sums the hours measure per type, treating absent as 0.
// Types with a zero sum are omitted from the result.
func HoursByType(activities []Activity) map[Type]float64 {
	hours := make(map[Type]float64)
	for _, a := range activities {
		if a.Hours == nil {
			continue
		}
		hours[a.Type] += *a.Hours
	}
	return hours
}

// AmountsByType sums the amount-raised measure per type, treating
// absent as 0. Types with a zero sum are omitted from the result.
func AmountsByType(activities []Activity) map[Type]float64 {
	amounts := make(map[Type]float64)
	for _, a := range activities {
		if a.AmountRaised == nil {
			continue
		}
		amounts[a.Type] += *a.AmountRaised
	}
	return amounts
}

// MonthlySeries accumulates activities into a trailing window of
// monthCount calendar months ending at the current month. The result
// always has exactly monthCount entries in chronological order,
// pre-seeded with zero buckets. Activities outside the window are
// dropped; activities with a zero date are skipped with a warning so
// aggregation stays total over any input.
func MonthlySeries(activities []Activity, monthCount int) []MonthBucket {
	if monthCount <= 0 {
		return []MonthBucket{}
	}

	now := timeNow()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	series := make([]MonthBucket, monthCount)
	index := make(map[int]int, monthCount) // year*12+month -> series position
	for i := 0; i < monthCount; i++ {
		m := current.AddDate(0, i-monthCount+1, 0)
		series[i] = MonthBucket{Month: m.Format("Jan")}
		index[m.Year()*12+int(m.Month())] = i
	}

	for _, a := range activities {
		if a.Date.IsZero() {
			log.Warn("activity has no occurrence date, skipping in monthly series",
				zap.String("activity_id", a.ID.String()))
			continue
		}
		pos, ok := index[a.Date.Year()*12+int(a.Date.Month())]
		if !ok {
			continue
		}
		series[pos].Count++
		series[pos].Points += a.Points
		if a.Hours != nil {
			series[pos].Hours += *a.Hours
		}
		if a.AmountRaised != nil {
			series[pos].Amount += *a.AmountRaised
		}
	}

	return series
}

// TotalPoints sums the points of all activities.
func TotalPoints(activities []Activity) int {
	total := 0
	for _, a := range activities {
		total += a.Points
	}
	return total
}
