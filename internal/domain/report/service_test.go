package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/dashboard"
)

type staticLeaderboard struct {
	entries []dashboard.LeaderboardEntry
	err     error
}

func (s staticLeaderboard) TopContributors(ctx context.Context, limit int) ([]dashboard.LeaderboardEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.entries) {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

func seededActivities(t *testing.T) activity.Service {
	t.Helper()
	svc := activity.NewService(activity.NewRepository(), nil, 6, zap.NewNop())
	ctx := context.Background()

	hours := 4.0
	_, err := svc.LogActivity(ctx, activity.CreateActivityInput{
		UserID: uuid.New(),
		Type:   activity.TypeVolunteer,
		Title:  "Park cleanup",
		Date:   time.Now().AddDate(0, -1, 0),
		Points: 40,
		Hours:  &hours,
	})
	require.NoError(t, err)

	raised := 5000.0
	_, err = svc.LogActivity(ctx, activity.CreateActivityInput{
		UserID:       uuid.New(),
		Type:         activity.TypeFundraising,
		Title:        "Charity run",
		Date:         time.Now(),
		Points:       500,
		AmountRaised: &raised,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateCompanyReport(t *testing.T) {
	leaderboard := staticLeaderboard{entries: []dashboard.LeaderboardEntry{
		{ID: "1", Name: "Ana", Score: 540},
	}}
	svc := NewService(seededActivities(t), leaderboard, zap.NewNop())

	r, err := svc.Generate(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, r.TotalActivities)
	assert.Equal(t, 540, r.TotalPoints)
	assert.Equal(t, 4.0, r.TotalHours)
	assert.Equal(t, 5000.0, r.TotalRaised)
	assert.Len(t, r.Monthly, 6)
	require.Len(t, r.TopContributors, 1)
	assert.Equal(t, "Ana", r.TopContributors[0].Name)
}

func TestGeneratePerUserReportSkipsRanking(t *testing.T) {
	activities := activity.NewService(activity.NewRepository(), nil, 6, zap.NewNop())
	userID := uuid.New()

	_, err := activities.LogActivity(context.Background(), activity.CreateActivityInput{
		UserID: userID,
		Type:   activity.TypeOther,
		Title:  "Blood donation",
		Date:   time.Now(),
		Points: 75,
	})
	require.NoError(t, err)

	svc := NewService(activities, staticLeaderboard{entries: []dashboard.LeaderboardEntry{{Name: "X"}}}, zap.NewNop())
	r, err := svc.Generate(context.Background(), &userID)
	require.NoError(t, err)

	assert.Equal(t, 75, r.TotalPoints)
	assert.Empty(t, r.TopContributors, "scoped reports carry no company ranking")
}

func TestGenerateSurvivesLeaderboardFailure(t *testing.T) {
	svc := NewService(seededActivities(t), staticLeaderboard{err: context.DeadlineExceeded}, zap.NewNop())

	r, err := svc.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, r.TopContributors)
	assert.Equal(t, 2, r.TotalActivities)
}
