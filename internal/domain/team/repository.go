package team

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, t *Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*Team, error)
	FindAll(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, t *Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Team
}

func NewRepository() Repository {
	return &repository{items: make(map[uuid.UUID]*Team)}
}

func (r *repository) Insert(ctx context.Context, t *Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = cloneTeam(t)
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.items[id]
	if !exists {
		return nil, ErrTeamNotFound
	}
	return cloneTeam(t), nil
}

func (r *repository) FindAll(ctx context.Context) ([]Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]Team, 0, len(r.items))
	for _, t := range r.items {
		teams = append(teams, *cloneTeam(t))
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt.Before(teams[j].CreatedAt)
	})
	return teams, nil
}

func (r *repository) Update(ctx context.Context, t *Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[t.ID]; !exists {
		return ErrTeamNotFound
	}
	r.items[t.ID] = cloneTeam(t)
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrTeamNotFound
	}
	delete(r.items, id)
	return nil
}

func cloneTeam(t *Team) *Team {
	clone := *t
	clone.MemberIDs = append([]uuid.UUID(nil), t.MemberIDs...)
	return &clone
}
