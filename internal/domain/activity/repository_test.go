package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActivity(t *testing.T, input CreateActivityInput) *Activity {
	t.Helper()
	a, err := NewActivity(input)
	require.NoError(t, err)
	return a
}

func TestNewActivityValidation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		input   CreateActivityInput
		wantErr error
	}{
		{
			name:  "valid volunteer activity",
			input: CreateActivityInput{UserID: userID, Type: TypeVolunteer, Title: "Beach cleanup", Points: 50, Hours: floatPtr(4)},
		},
		{
			name:    "negative points rejected",
			input:   CreateActivityInput{UserID: userID, Type: TypeOther, Title: "x", Points: -1},
			wantErr: ErrNegativePoints,
		},
		{
			name:    "hours on a fundraising activity rejected",
			input:   CreateActivityInput{UserID: userID, Type: TypeFundraising, Title: "x", Hours: floatPtr(1)},
			wantErr: ErrMeasureMismatch,
		},
		{
			name:    "amount on a volunteer activity rejected",
			input:   CreateActivityInput{UserID: userID, Type: TypeVolunteer, Title: "x", AmountRaised: floatPtr(10)},
			wantErr: ErrMeasureMismatch,
		},
		{
			name:    "unknown type rejected",
			input:   CreateActivityInput{UserID: userID, Type: Type("advocacy"), Title: "x"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing title rejected",
			input:   CreateActivityInput{UserID: userID, Type: TypeOther},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewActivity(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, a.ID)
		})
	}
}

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	userID := uuid.New()

	a := mustActivity(t, CreateActivityInput{
		UserID: userID, Type: TypeVolunteer, Title: "Soup kitchen",
		Points: 20, Hours: floatPtr(2), Date: time.Now(),
	})
	require.NoError(t, repo.Insert(ctx, a))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup kitchen", got.Title)

	got.Title = "Soup kitchen shift"
	require.NoError(t, repo.Update(ctx, got))

	// The stored copy is isolated from caller mutations.
	got.Title = "mutated after update"
	stored, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup kitchen shift", stored.Title)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrActivityNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrActivityNotFound)
}

func TestRepositoryFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	alice, bob := uuid.New(), uuid.New()

	base := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		owner := alice
		if i%2 == 1 {
			owner = bob
		}
		a := mustActivity(t, CreateActivityInput{
			UserID: owner, Type: TypeOther, Title: "entry",
			Date: base.AddDate(0, 0, i),
		})
		require.NoError(t, repo.Insert(ctx, a))
	}

	mine, total, err := repo.FindAll(ctx, ActivityFilter{UserID: &alice})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, mine, 3)
	// Most recent first.
	assert.True(t, mine[0].Date.After(mine[1].Date))

	page, total, err := repo.FindAll(ctx, ActivityFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	empty, _, err := repo.FindAll(ctx, ActivityFilter{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
