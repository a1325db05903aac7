package impact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/activity"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/charity"
)

// Points awarded per unit of each contribution measure.
const (
	pointsPerHour     = 10
	pointsPerDonation = 25
	pointsPer10Value  = 1
)

// SubmitListener is notified after an entry has been persisted. The
// dashboard layer uses it to refresh its catalog.
type SubmitListener func(entry Entry, logged *activity.Activity)

type Service interface {
	// NewForm hands out a fresh per-session form bound to the
	// service's attachment policy.
	NewForm() *Form

	// LoadCauses runs a registry lookup guarded by the form's request
	// token and applies the result if it is still current.
	LoadCauses(ctx context.Context, form *Form, page int)

	// Submit validates the active branch, converts it to an activity,
	// appends it to the store, notifies listeners and resets the form.
	Submit(ctx context.Context, form *Form, userID uuid.UUID) (*activity.Activity, error)

	// RegisterListener adds a post-submit hook. Called during wiring,
	// before the service handles traffic.
	RegisterListener(l SubmitListener)
}

type service struct {
	activities activity.Service
	registry   *charity.Client
	policy     AttachmentPolicy
	listeners  []SubmitListener
	logger     *logrus.Logger
}

type ServiceConfig struct {
	Activities activity.Service
	Registry   *charity.Client
	Policy     AttachmentPolicy
	Logger     *logrus.Logger
}

func NewService(cfg ServiceConfig) Service {
	if cfg.Policy.MaxSizeBytes <= 0 {
		cfg.Policy = DefaultAttachmentPolicy()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	return &service{
		activities: cfg.Activities,
		registry:   cfg.Registry,
		policy:     cfg.Policy,
		logger:     cfg.Logger,
	}
}

func (s *service) RegisterListener(l SubmitListener) {
	s.listeners = append(s.listeners, l)
}

func (s *service) NewForm() *Form {
	return NewForm(s.policy)
}

func (s *service) LoadCauses(ctx context.Context, form *Form, page int) {
	token := form.BeginCauseLookup()
	result := s.registry.Lookup(ctx, page)
	if !form.ApplyCauseLookup(token, result) {
		s.logger.WithFields(logrus.Fields{
			"token": token,
			"page":  page,
		}).Debug("discarded stale cause lookup response")
		return
	}
	if result.Degraded {
		s.logger.WithField("count", len(result.Charities)).
			Warn("cause registry degraded, serving fallback list")
	}
}

func (s *service) Submit(ctx context.Context, form *Form, userID uuid.UUID) (*activity.Activity, error) {
	entry, err := form.Snapshot()
	if err != nil {
		return nil, err
	}

	input := entryToActivity(*entry, userID)
	logged, err := s.activities.LogActivity(ctx, input)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"category": entry.Category,
			"user_id":  userID,
		}).Error("failed to log impact entry")
		return nil, err
	}

	for _, l := range s.listeners {
		l(*entry, logged)
	}

	s.logger.WithFields(logrus.Fields{
		"category":    entry.Category,
		"activity_id": logged.ID,
		"points":      logged.Points,
	}).Info("impact entry submitted")

	form.Reset()
	return logged, nil
}

// entryToActivity maps a validated entry onto the activity store's
// shape. Hours only travel on volunteer records and raised amounts only
// on fundraising ones; blood and items express their measures through
// the impact text.
func entryToActivity(e Entry, userID uuid.UUID) activity.CreateActivityInput {
	switch e.Category {
	case CategoryFunds:
		if e.Funds.Discount != nil {
			d := e.Funds.Discount
			amount := d.DiscountValue
			return activity.CreateActivityInput{
				UserID:       userID,
				Type:         activity.TypeFundraising,
				Title:        d.ProjectTitle,
				Description:  d.Outcome,
				Impact:       fmt.Sprintf("%.0f discounted for %s", d.DiscountValue, d.Mission),
				Date:         d.EndDate,
				Points:       valuePoints(d.DiscountValue),
				AmountRaised: &amount,
			}
		}
		g := e.Funds.Grant
		amount := g.Value
		return activity.CreateActivityInput{
			UserID:       userID,
			Type:         activity.TypeFundraising,
			Title:        g.Title,
			Description:  g.Outcome,
			Impact:       fmt.Sprintf("%.0f granted across %d missions", g.Value, len(g.MissionTags)),
			Date:         g.Date,
			Points:       valuePoints(g.Value),
			AmountRaised: &amount,
		}

	case CategoryTime:
		t := e.Time
		hours := t.Hours
		return activity.CreateActivityInput{
			UserID:      userID,
			Type:        activity.TypeVolunteer,
			Title:       t.Title,
			Description: t.Outcome,
			Impact:      fmt.Sprintf("%.1f hours contributed", t.Hours),
			Date:        t.EndDate,
			Points:      int(t.Hours * pointsPerHour),
			Hours:       &hours,
		}

	case CategoryBlood:
		b := e.Blood
		return activity.CreateActivityInput{
			UserID:      userID,
			Type:        activity.TypeOther,
			Title:       fmt.Sprintf("Blood donation (%s)", b.Kind),
			Description: b.DonorLocation,
			Impact:      fmt.Sprintf("%d donations, ~%d lives saved", b.DonationCount, b.LivesSaved),
			Date:        b.Date,
			Points:      b.DonationCount * pointsPerDonation,
		}

	case CategoryItems:
		i := e.Items
		return activity.CreateActivityInput{
			UserID:      userID,
			Type:        activity.TypeOther,
			Title:       i.ItemName,
			Description: i.Outcome,
			Impact:      fmt.Sprintf("%.0f %s items donated, value %.2f", i.Units, i.ItemCategory, i.TotalValue),
			Date:        i.Date,
			Points:      valuePoints(i.TotalValue),
		}
	}
	return activity.CreateActivityInput{UserID: userID}
}

func valuePoints(value float64) int {
	return int(value/10) * pointsPer10Value
}
