package user

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	mu      sync.RWMutex
	items   map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewRepository() Repository {
	return &repository{
		items:   make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repository) Insert(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrEmailTaken
	}
	clone := cloneUser(u)
	r.items[u.ID] = clone
	r.byEmail[key] = u.ID
	return nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.items[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[normalizeEmail(email)]
	if !exists {
		return nil, ErrUserNotFound
	}
	return cloneUser(r.items[id]), nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.items))
	for _, u := range r.items {
		users = append(users, *cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[u.ID]
	if !exists {
		return ErrUserNotFound
	}
	if normalizeEmail(existing.Email) != normalizeEmail(u.Email) {
		key := normalizeEmail(u.Email)
		if _, taken := r.byEmail[key]; taken {
			return ErrEmailTaken
		}
		delete(r.byEmail, normalizeEmail(existing.Email))
		r.byEmail[key] = u.ID
	}
	r.items[u.ID] = cloneUser(u)
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.items[id]
	if !exists {
		return ErrUserNotFound
	}
	delete(r.byEmail, normalizeEmail(u.Email))
	delete(r.items, id)
	return nil
}

func cloneUser(u *User) *User {
	clone := *u
	clone.Badges = append([]string(nil), u.Badges...)
	return &clone
}
