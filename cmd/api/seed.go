package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/dashboard"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/marketplace"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/team"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/user"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/pkg/logger"
)

// seedDemoData loads a small demo dataset so the dashboard renders with
// live aggregates on first boot. Stores are in-memory; the seed runs on
// every start.
func seedDemoData(
	ctx context.Context,
	users user.Service,
	activities activity.Service,
	opportunities marketplace.Service,
	teams team.Service,
	dashboards dashboard.Service,
	registry *dashboard.Registry,
	log *logger.Logger,
) error {
	ana, err := users.Register(ctx, user.RegisterInput{
		Email:        "ana@voli.demo",
		Name:         "Ana Silva",
		Password:     "demo-password",
		Organization: "VOLI",
	})
	if err != nil {
		return err
	}
	ben, err := users.Register(ctx, user.RegisterInput{
		Email:        "ben@voli.demo",
		Name:         "Ben Okafor",
		Password:     "demo-password",
		Organization: "VOLI",
	})
	if err != nil {
		return err
	}

	now := time.Now()
	hours4, hours3 := 4.0, 3.0
	raised := 5000.0

	seedActivities := []activity.CreateActivityInput{
		{
			UserID: ana.ID,
			Type:   activity.TypeVolunteer,
			Title:  "Beach cleanup",
			Impact: "4.0 hours contributed",
			Date:   now.AddDate(0, -1, 0),
			Points: 40,
			Hours:  &hours4,
		},
		{
			UserID: ben.ID,
			Type:   activity.TypeVolunteer,
			Title:  "Food bank shift",
			Impact: "3.0 hours contributed",
			Date:   now.AddDate(0, 0, -10),
			Points: 30,
			Hours:  &hours3,
		},
		{
			UserID:       ana.ID,
			Type:         activity.TypeFundraising,
			Title:        "Charity run",
			Impact:       "5000 raised for clean water",
			Date:         now.AddDate(0, -2, 0),
			Points:       500,
			AmountRaised: &raised,
		},
		{
			UserID: ben.ID,
			Type:   activity.TypeLearning,
			Title:  "Sustainability workshop",
			Date:   now.AddDate(0, 0, -3),
			Points: 15,
		},
	}
	for _, input := range seedActivities {
		if _, err := activities.LogActivity(ctx, input); err != nil {
			return err
		}
	}

	seedOpportunities := []marketplace.CreateOpportunityInput{
		{
			Title:        "Weekend tree planting",
			Organization: "Tree Alliance",
			Location:     "Riverside Park",
			Category:     "environment",
			Points:       50,
			Date:         now.AddDate(0, 0, 7),
		},
		{
			Title:        "Coding mentor for teens",
			Organization: "Code Forward",
			Location:     "Remote",
			Category:     "education",
			Points:       60,
			Date:         now.AddDate(0, 0, 14),
		},
	}
	for _, input := range seedOpportunities {
		if _, err := opportunities.CreateOpportunity(ctx, input); err != nil {
			return err
		}
	}

	if _, err := teams.CreateTeam(ctx, team.CreateTeamInput{
		Name:        "Green Ops",
		Description: "Environmental volunteering crew",
		LeadID:      ana.ID,
	}); err != nil {
		return err
	}

	// Build the widget catalog from the seeded store, then pin the
	// default dashboard to the full built-in set.
	if err := dashboards.RefreshCatalog(ctx); err != nil {
		return err
	}
	registry.SeedDefault("Impact Overview", "Company-wide impact at a glance",
		[]int{1, 2, 3, 4, 5, 6, 7, 8})

	log.Info("demo data seeded",
		zap.String("default_dashboard", "Impact Overview"),
		zap.Int("users", 2),
		zap.Int("activities", len(seedActivities)))
	return nil
}
