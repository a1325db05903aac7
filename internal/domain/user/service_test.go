package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() Service {
	return NewService(NewRepository(), zap.NewNop())
}

func register(t *testing.T, svc Service, email, name string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Name:     name,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	u := register(t, svc, "Ana@Example.com", "Ana")

	assert.Equal(t, "ana@example.com", u.Email, "emails are stored lowercased")
	assert.Equal(t, RoleUser, u.Role)
	assert.Equal(t, 1, u.Level)
	assert.Empty(t, u.Badges)

	got, err := svc.Authenticate(context.Background(), "ana@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidPassword, "unknown email and bad password are indistinguishable")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService()
	register(t, svc, "ana@example.com", "Ana")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ANA@example.com",
		Name:     "Impostor",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Name: "A", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "A", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAwardPointsUpdatesLevelAndBadges(t *testing.T) {
	svc := newTestService()
	u := register(t, svc, "ana@example.com", "Ana")
	ctx := context.Background()

	require.NoError(t, svc.AwardPoints(ctx, u.ID, 120))

	got, err := svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.Points)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, []string{"first-steps", "contributor"}, got.Badges)

	// A second award crosses the next threshold without re-awarding
	// earlier badges.
	require.NoError(t, svc.AwardPoints(ctx, u.ID, 400))
	got, err = svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 520, got.Points)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, []string{"first-steps", "contributor", "champion"}, got.Badges)
}

func TestAwardPointsUnknownUser(t *testing.T) {
	svc := newTestService()
	err := svc.AwardPoints(context.Background(), register(t, svc, "a@b.c", "A").ID, 10)
	require.NoError(t, err)

	err = svc.AwardPoints(context.Background(), uuid.New(), 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTopContributors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ana := register(t, svc, "ana@example.com", "Ana")
	ben := register(t, svc, "ben@example.com", "Ben")
	cam := register(t, svc, "cam@example.com", "Cam")

	require.NoError(t, svc.AwardPoints(ctx, ana.ID, 300))
	require.NoError(t, svc.AwardPoints(ctx, ben.ID, 700))
	require.NoError(t, svc.AwardPoints(ctx, cam.ID, 100))

	top, err := svc.TopContributors(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Ben", top[0].Name)
	assert.Equal(t, 700, top[0].Score)
	assert.Equal(t, "Ana", top[1].Name)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService()
	u := register(t, svc, "ana@example.com", "Ana")

	name := "Ana Silva"
	org := "VOLI"
	got, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		Name:         &name,
		Organization: &org,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", got.Name)
	assert.Equal(t, "VOLI", got.Organization)

	_, err = svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
