package impact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/charity"
)

func newImpactService(t *testing.T, registryURL string) (Service, activity.Service) {
	t.Helper()
	activities := activity.NewService(activity.NewRepository(), nil, 6, zap.NewNop())

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := NewService(ServiceConfig{
		Activities: activities,
		Registry:   charity.NewClient(registryURL, time.Second, 25, zap.NewNop()),
		Policy:     DefaultAttachmentPolicy(),
		Logger:     logger,
	})
	return svc, activities
}

func TestSubmitTimeEntry(t *testing.T) {
	svc, activities := newImpactService(t, "")
	userID := uuid.New()

	form := svc.NewForm()
	require.NoError(t, form.SelectCategory(CategoryTime))
	require.NoError(t, form.SetTimeKind(TimeProBono))
	require.NoError(t, form.EditTime(func(ts *TimeState) {
		ts.Title = "Legal clinic"
		ts.CauseID = "local-community-fund"
		ts.Hours = 4
		ts.StartDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		ts.EndDate = time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	}))

	logged, err := svc.Submit(context.Background(), form, userID)
	require.NoError(t, err)

	assert.Equal(t, activity.TypeVolunteer, logged.Type)
	require.NotNil(t, logged.Hours)
	assert.Equal(t, 4.0, *logged.Hours)
	assert.Nil(t, logged.AmountRaised)
	assert.Equal(t, 40, logged.Points)

	// The entry landed in the store.
	all, total, err := activities.ListActivities(context.Background(), activity.ActivityFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Legal clinic", all[0].Title)

	// The form is back at the start.
	assert.Equal(t, CategoryUnselected, form.Category())
}

func TestSubmitBloodEntryCarriesDerivedImpact(t *testing.T) {
	svc, _ := newImpactService(t, "")
	form := svc.NewForm()

	require.NoError(t, form.SelectCategory(CategoryBlood))
	require.NoError(t, form.EditBlood(func(b *BloodState) {
		b.DonationCount = 5
		b.DonorLocation = "Central Blood Bank"
		b.Date = time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	}))

	logged, err := svc.Submit(context.Background(), form, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, activity.TypeOther, logged.Type)
	assert.Contains(t, logged.Impact, "15 lives saved")
	assert.Equal(t, 125, logged.Points)
	assert.Nil(t, logged.Hours)
	assert.Nil(t, logged.AmountRaised)
}

func TestSubmitFundsGrant(t *testing.T) {
	svc, _ := newImpactService(t, "")
	form := svc.NewForm()

	require.NoError(t, form.SelectCategory(CategoryFunds))
	require.NoError(t, form.SetFundsKind(FundsCorporate))
	require.NoError(t, form.EditFunds(func(fs *FundsState) {
		fs.Grant.Title = "Emergency relief grant"
		fs.Grant.CauseID = "red-cross"
		fs.Grant.MissionTags = []string{"disaster-relief"}
		fs.Grant.Value = 5000
		fs.Grant.Date = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	}))

	logged, err := svc.Submit(context.Background(), form, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, activity.TypeFundraising, logged.Type)
	require.NotNil(t, logged.AmountRaised)
	assert.Equal(t, 5000.0, *logged.AmountRaised)
	assert.Equal(t, 500, logged.Points)
}

func TestSubmitInvalidBranchLeavesStoreUntouched(t *testing.T) {
	svc, activities := newImpactService(t, "")
	form := svc.NewForm()
	require.NoError(t, form.SelectCategory(CategoryItems))

	_, err := svc.Submit(context.Background(), form, uuid.New())
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, total, err := activities.ListActivities(context.Background(), activity.ActivityFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)

	// A failed submission keeps the draft for correction.
	assert.Equal(t, CategoryItems, form.Category())
}

func TestSubmitNotifiesListeners(t *testing.T) {
	svc, _ := newImpactService(t, "")

	var gotCategory Category
	var gotID uuid.UUID
	svc.RegisterListener(func(entry Entry, logged *activity.Activity) {
		gotCategory = entry.Category
		gotID = logged.ID
	})

	form := svc.NewForm()
	require.NoError(t, form.SelectCategory(CategoryItems))
	require.NoError(t, form.EditItems(func(i *ItemsState) {
		i.ItemName = "School supplies"
		i.CauseID = "save-the-children"
		i.Units = 30
		i.ValuePerUnit = 3
		i.Date = time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	}))

	logged, err := svc.Submit(context.Background(), form, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, CategoryItems, gotCategory)
	assert.Equal(t, logged.ID, gotID)
}

func TestLoadCausesAppliesRegistryResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"nonprofits":[{"ein":"99-001","name":"River Cleanup"}]}`))
	}))
	defer srv.Close()

	svc, _ := newImpactService(t, srv.URL)
	form := svc.NewForm()

	svc.LoadCauses(context.Background(), form, 1)

	causes, degraded := form.Causes()
	require.Len(t, causes, 1)
	assert.Equal(t, "River Cleanup", causes[0].Name)
	assert.False(t, degraded)
}

func TestLoadCausesFallsBackWhenRegistryDown(t *testing.T) {
	svc, _ := newImpactService(t, "http://127.0.0.1:1")
	form := svc.NewForm()

	svc.LoadCauses(context.Background(), form, 1)

	causes, degraded := form.Causes()
	assert.Equal(t, charity.FallbackCharities, causes)
	assert.True(t, degraded)
}
