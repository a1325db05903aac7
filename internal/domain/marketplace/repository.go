package marketplace

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// OpportunityFilter narrows a listing query.
type OpportunityFilter struct {
	Category *string
	Location *string
}

type Repository interface {
	Insert(ctx context.Context, o *Opportunity) error
	FindByID(ctx context.Context, id uuid.UUID) (*Opportunity, error)
	FindAll(ctx context.Context, filter OpportunityFilter) ([]Opportunity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Opportunity
}

func NewRepository() Repository {
	return &repository{items: make(map[uuid.UUID]*Opportunity)}
}

func (r *repository) Insert(ctx context.Context, o *Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *o
	r.items[o.ID] = &clone
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.items[id]
	if !exists {
		return nil, ErrOpportunityNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *repository) FindAll(ctx context.Context, filter OpportunityFilter) ([]Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Opportunity, 0, len(r.items))
	for _, o := range r.items {
		if filter.Category != nil && o.Category != *filter.Category {
			continue
		}
		if filter.Location != nil && o.Location != *filter.Location {
			continue
		}
		matched = append(matched, *o)
	}

	// Soonest event first; stable tiebreak on title for map iteration.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Title < matched[j].Title
		}
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrOpportunityNotFound
	}
	delete(r.items, id)
	return nil
}
