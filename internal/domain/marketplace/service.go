package marketplace

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (*Opportunity, error)
	GetOpportunity(ctx context.Context, id uuid.UUID) (*Opportunity, error)

	// Browse merges the curated catalog with the fresh scraped
	// listings. Scraped entries never enter the curated store.
	Browse(ctx context.Context, filter OpportunityFilter) ([]Opportunity, error)

	DeleteOpportunity(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	listings *ListingsClient
	logger   *zap.Logger
}

func NewService(repo Repository, listings *ListingsClient, logger *zap.Logger) Service {
	return &service{repo: repo, listings: listings, logger: logger}
}

func (s *service) CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (*Opportunity, error) {
	o, err := NewOpportunity(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, err
	}
	s.logger.Info("opportunity created",
		zap.String("opportunity_id", o.ID.String()),
		zap.String("title", o.Title))
	return o, nil
}

func (s *service) GetOpportunity(ctx context.Context, id uuid.UUID) (*Opportunity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Browse(ctx context.Context, filter OpportunityFilter) ([]Opportunity, error) {
	curated, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	merged := curated
	if s.listings != nil {
		for _, o := range s.listings.Fetch(ctx) {
			if filter.Category != nil && o.Category != *filter.Category {
				continue
			}
			if filter.Location != nil && o.Location != *filter.Location {
				continue
			}
			merged = append(merged, o)
		}
	}
	return merged, nil
}

func (s *service) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
