package team

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*Team, error)
	ListTeams(ctx context.Context) ([]Team, error)
	Join(ctx context.Context, teamID, userID uuid.UUID) (*Team, error)
	Leave(ctx context.Context, teamID, userID uuid.UUID) (*Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateTeam(ctx context.Context, input CreateTeamInput) (*Team, error) {
	t, err := NewTeam(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("team created",
		zap.String("team_id", t.ID.String()),
		zap.String("name", t.Name))
	return t, nil
}

func (s *service) GetTeam(ctx context.Context, id uuid.UUID) (*Team, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListTeams(ctx context.Context) ([]Team, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Join(ctx context.Context, teamID, userID uuid.UUID) (*Team, error) {
	t, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if t.HasMember(userID) {
		return nil, ErrAlreadyMember
	}

	t.MemberIDs = append(t.MemberIDs, userID)
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Leave(ctx context.Context, teamID, userID uuid.UUID) (*Team, error) {
	t, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !t.HasMember(userID) {
		return nil, ErrNotMember
	}

	members := t.MemberIDs[:0]
	for _, id := range t.MemberIDs {
		if id != userID {
			members = append(members, id)
		}
	}
	t.MemberIDs = members
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
