package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PointsAwarder receives the reward points of a newly logged activity.
// The user domain implements it; the indirection keeps this package
// free of a dependency on user internals.
type PointsAwarder interface {
	AwardPoints(ctx context.Context, userID uuid.UUID, points int) error
}

type Service interface {
	LogActivity(ctx context.Context, input CreateActivityInput) (*Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error)
	ListActivities(ctx context.Context, filter ActivityFilter) ([]Activity, int64, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input UpdateActivityInput) (*Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	// Aggregated views over the full store.
	Summary(ctx context.Context, userID *uuid.UUID) (*Summary, error)
}

// Summary bundles the aggregator outputs for one caller.
type Summary struct {
	Counts      map[Type]int     `json:"counts"`
	Hours       map[Type]float64 `json:"hours"`
	Amounts     map[Type]float64 `json:"amounts"`
	Monthly     []MonthBucket    `json:"monthly"`
	TotalPoints int              `json:"total_points"`
}

type service struct {
	repo          Repository
	awarder       PointsAwarder
	monthlyWindow int
	logger        *zap.Logger
}

func NewService(repo Repository, awarder PointsAwarder, monthlyWindow int, logger *zap.Logger) Service {
	if monthlyWindow <= 0 {
		monthlyWindow = 6
	}
	return &service{
		repo:          repo,
		awarder:       awarder,
		monthlyWindow: monthlyWindow,
		logger:        logger,
	}
}

func (s *service) LogActivity(ctx context.Context, input CreateActivityInput) (*Activity, error) {
	a, err := NewActivity(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}

	if s.awarder != nil && a.Points > 0 {
		if err := s.awarder.AwardPoints(ctx, a.UserID, a.Points); err != nil {
			s.logger.Error("failed to award points for activity",
				zap.String("activity_id", a.ID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("activity logged",
		zap.String("activity_id", a.ID.String()),
		zap.String("type", string(a.Type)),
		zap.Int("points", a.Points))

	return a, nil
}

func (s *service) GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListActivities(ctx context.Context, filter ActivityFilter) ([]Activity, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateActivity(ctx context.Context, id uuid.UUID, input UpdateActivityInput) (*Activity, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		a.Title = *input.Title
	}
	if input.Description != nil {
		a.Description = *input.Description
	}
	if input.Impact != nil {
		a.Impact = *input.Impact
	}
	if input.Date != nil {
		a.Date = *input.Date
	}
	if input.Hours != nil {
		if a.Type != TypeVolunteer {
			return nil, ErrMeasureMismatch
		}
		a.Hours = input.Hours
	}
	if input.AmountRaised != nil {
		if a.Type != TypeFundraising {
			return nil, ErrMeasureMismatch
		}
		a.AmountRaised = input.AmountRaised
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Summary(ctx context.Context, userID *uuid.UUID) (*Summary, error) {
	activities, _, err := s.repo.FindAll(ctx, ActivityFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	return &Summary{
		Counts:      CountsByType(activities),
		Hours:       HoursByType(activities),
		Amounts:     AmountsByType(activities),
		Monthly:     MonthlySeries(activities, s.monthlyWindow),
		TotalPoints: TotalPoints(activities),
	}, nil
}
