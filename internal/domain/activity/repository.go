package activity

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ActivityFilter defines the filtering options for listing activities.
type ActivityFilter struct {
	UserID   *uuid.UUID
	Type     *Type
	Page     int
	PageSize int
}

// Repository defines the interface for activity persistence. The
// canonical store is in-memory; the interface keeps call sites stable
// if storage ever moves behind a real persistence boundary.
type Repository interface {
	Insert(ctx context.Context, a *Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*Activity, error)
	FindAll(ctx context.Context, filter ActivityFilter) ([]Activity, int64, error)
	Update(ctx context.Context, a *Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Activity
	order []uuid.UUID // insertion order, the display order of the store
}

func NewRepository() Repository {
	return &repository{
		items: make(map[uuid.UUID]*Activity),
	}
}

func (r *repository) Insert(ctx context.Context, a *Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	clone := *a
	r.items[a.ID] = &clone
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.items[id]
	if !exists {
		return nil, ErrActivityNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *repository) FindAll(ctx context.Context, filter ActivityFilter) ([]Activity, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Activity, 0, len(r.order))
	for _, id := range r.order {
		a := r.items[id]
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		if filter.Type != nil && a.Type != *filter.Type {
			continue
		}
		matched = append(matched, *a)
	}

	// Most recent occurrence first, stable across equal dates.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	total := int64(len(matched))
	if filter.PageSize <= 0 {
		return matched, total, nil
	}

	start := filter.Page * filter.PageSize
	if start >= len(matched) {
		return []Activity{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *repository) Update(ctx context.Context, a *Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[a.ID]; !exists {
		return ErrActivityNotFound
	}
	clone := *a
	r.items[a.ID] = &clone
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrActivityNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
