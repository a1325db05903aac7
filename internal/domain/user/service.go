package user

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/achievement"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/dashboard"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*User, error)

	// AwardPoints adds reward points to an account and re-evaluates
	// its level and badge ladder.
	AwardPoints(ctx context.Context, userID uuid.UUID, points int) error

	// TopContributors returns the highest-scoring accounts for
	// leaderboard widgets.
	TopContributors(ctx context.Context, limit int) ([]dashboard.LeaderboardEntry, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if input.Email == "" || input.Name == "" || len(input.Password) < 8 {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         input.Name,
		Role:         RoleUser,
		Organization: input.Organization,
		AvatarURL:    input.AvatarURL,
		Level:        achievement.LevelForPoints(0),
		Badges:       []string{},
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email))
	return u, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Same failure for unknown email and bad password.
		return nil, ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Organization != nil {
		u.Organization = *input.Organization
	}
	if input.AvatarURL != nil {
		u.AvatarURL = *input.AvatarURL
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) AwardPoints(ctx context.Context, userID uuid.UUID, points int) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	previous := u.Points
	u.Points += points
	u.Level = achievement.LevelForPoints(u.Points)

	newly := achievement.NewlyEarned(previous, u.Points)
	for _, b := range newly {
		u.Badges = append(u.Badges, b.Key)
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	if len(newly) > 0 {
		keys := make([]string, 0, len(newly))
		for _, b := range newly {
			keys = append(keys, b.Key)
		}
		s.logger.Info("badges earned",
			zap.String("user_id", userID.String()),
			zap.Strings("badges", keys))
	}
	return nil
}

func (s *service) TopContributors(ctx context.Context, limit int) ([]dashboard.LeaderboardEntry, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}

	entries := make([]dashboard.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, dashboard.LeaderboardEntry{
			ID:     u.ID.String(),
			Name:   u.Name,
			Score:  u.Points,
			Avatar: u.AvatarURL,
		})
	}
	return entries, nil
}
