package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/dashboard"
)

// Report is a point-in-time rollup of company impact, assembled from
// the activity aggregates and the contributor ranking.
type Report struct {
	GeneratedAt     time.Time                    `json:"generated_at"`
	TotalActivities int                          `json:"total_activities"`
	TotalPoints     int                          `json:"total_points"`
	TotalHours      float64                      `json:"total_hours"`
	TotalRaised     float64                      `json:"total_raised"`
	Counts          map[activity.Type]int        `json:"counts"`
	Hours           map[activity.Type]float64    `json:"hours"`
	Amounts         map[activity.Type]float64    `json:"amounts"`
	Monthly         []activity.MonthBucket       `json:"monthly"`
	TopContributors []dashboard.LeaderboardEntry `json:"top_contributors"`
}

type Service interface {
	// Generate builds a report over the whole store, or over a single
	// user when userID is set.
	Generate(ctx context.Context, userID *uuid.UUID) (*Report, error)
}

type service struct {
	activities  activity.Service
	leaderboard dashboard.LeaderboardSource
	topLimit    int
	logger      *zap.Logger
}

func NewService(activities activity.Service, leaderboard dashboard.LeaderboardSource, logger *zap.Logger) Service {
	return &service{
		activities:  activities,
		leaderboard: leaderboard,
		topLimit:    5,
		logger:      logger,
	}
}

func (s *service) Generate(ctx context.Context, userID *uuid.UUID) (*Report, error) {
	summary, err := s.activities.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := &Report{
		GeneratedAt: time.Now(),
		Counts:      summary.Counts,
		Hours:       summary.Hours,
		Amounts:     summary.Amounts,
		Monthly:     summary.Monthly,
		TotalPoints: summary.TotalPoints,
	}
	for _, n := range summary.Counts {
		r.TotalActivities += n
	}
	for _, h := range summary.Hours {
		r.TotalHours += h
	}
	for _, a := range summary.Amounts {
		r.TotalRaised += a
	}

	// Per-user reports skip the ranking; it is a company-wide view.
	if userID == nil && s.leaderboard != nil {
		top, err := s.leaderboard.TopContributors(ctx, s.topLimit)
		if err != nil {
			s.logger.Warn("report generated without contributor ranking", zap.Error(err))
		} else {
			r.TopContributors = top
		}
	}

	s.logger.Info("impact report generated",
		zap.Int("activities", r.TotalActivities),
		zap.Int("points", r.TotalPoints))
	return r, nil
}
