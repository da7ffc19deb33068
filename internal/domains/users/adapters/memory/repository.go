package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Apurer/user-order-services/internal/domains/users/domain"
	"github.com/Apurer/user-order-services/internal/domains/users/ports"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user store. Ids come from a monotonic counter
// and are never handed out twice.
type Repository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	lastID atomic.Int64
}

// NewRepository constructs an empty store; call Seed to load sample rows.
func NewRepository() *Repository {
	return &Repository{users: map[int64]*domain.User{}}
}

// Seed inserts users with their preset ids and moves the generator past them.
func (r *Repository) Seed(_ context.Context, users ...*domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range users {
		if user == nil || user.ID <= 0 {
			return errors.New("seed user requires a positive id")
		}
		clone := *user
		r.users[clone.ID] = &clone
		r.reserve(clone.ID)
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (option.Option[*domain.User], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return option.None[*domain.User](), nil
	}
	clone := *user
	return option.Some(&clone), nil
}

func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	clone := *user
	if clone.ID == 0 {
		clone.ID = r.lastID.Add(1)
	} else {
		r.reserve(clone.ID)
	}
	r.mu.Lock()
	r.users[clone.ID] = &clone
	r.mu.Unlock()
	result := clone
	return &result, nil
}

func (r *Repository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// reserve bumps the generator so that id is never generated later.
func (r *Repository) reserve(id int64) {
	for {
		current := r.lastID.Load()
		if id <= current || r.lastID.CompareAndSwap(current, id) {
			return
		}
	}
}
