package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/domains/orders/ports"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order store with a monotonic id generator.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	lastID atomic.Int64
	now    func() time.Time
}

// NewRepository constructs an empty store; call Seed to load sample rows.
func NewRepository() *Repository {
	return &Repository{
		orders: map[int64]*domain.Order{},
		now:    time.Now,
	}
}

// WithClock overrides the time source used for CreatedAt.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	if now != nil {
		r.now = now
	}
	return r
}

// Seed inserts orders with their preset ids and moves the generator past them.
func (r *Repository) Seed(_ context.Context, orders ...*domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range orders {
		if order == nil || order.ID <= 0 {
			return errors.New("seed order requires a positive id")
		}
		clone := *order
		r.orders[clone.ID] = &clone
		r.reserve(clone.ID)
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*domain.Order) bool { return true }), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (option.Option[*domain.Order], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return option.None[*domain.Order](), nil
	}
	clone := *order
	return option.Some(&clone), nil
}

// ListByUserID scans every order for the given owner.
func (r *Repository) ListByUserID(_ context.Context, userID int64) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o *domain.Order) bool { return o.UserID == userID }), nil
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	if clone.ID == 0 {
		clone.ID = r.lastID.Add(1)
	} else {
		r.reserve(clone.ID)
	}
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = r.now()
	}
	r.mu.Lock()
	r.orders[clone.ID] = &clone
	r.mu.Unlock()
	result := clone
	return &result, nil
}

func (r *Repository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

// Count returns the number of stored orders.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// collect must be called with the read lock held.
func (r *Repository) collect(match func(*domain.Order) bool) []*domain.Order {
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if !match(order) {
			continue
		}
		clone := *order
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *Repository) reserve(id int64) {
	for {
		current := r.lastID.Load()
		if id <= current || r.lastID.CompareAndSwap(current, id) {
			return
		}
	}
}
