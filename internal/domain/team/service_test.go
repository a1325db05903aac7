package team

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateTeamLeadIsFirstMember(t *testing.T) {
	svc := NewService(NewRepository(), zap.NewNop())
	lead := uuid.New()

	created, err := svc.CreateTeam(context.Background(), CreateTeamInput{
		Name:   "Green Ops",
		LeadID: lead,
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{lead}, created.MemberIDs)

	_, err = svc.CreateTeam(context.Background(), CreateTeamInput{Name: "No lead"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJoinAndLeave(t *testing.T) {
	svc := NewService(NewRepository(), zap.NewNop())
	ctx := context.Background()
	lead, member := uuid.New(), uuid.New()

	created, err := svc.CreateTeam(ctx, CreateTeamInput{Name: "Green Ops", LeadID: lead})
	require.NoError(t, err)

	joined, err := svc.Join(ctx, created.ID, member)
	require.NoError(t, err)
	assert.Len(t, joined.MemberIDs, 2)

	_, err = svc.Join(ctx, created.ID, member)
	assert.ErrorIs(t, err, ErrAlreadyMember)

	left, err := svc.Leave(ctx, created.ID, member)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{lead}, left.MemberIDs)

	_, err = svc.Leave(ctx, created.ID, member)
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestJoinUnknownTeam(t *testing.T) {
	svc := NewService(NewRepository(), zap.NewNop())
	_, err := svc.Join(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
