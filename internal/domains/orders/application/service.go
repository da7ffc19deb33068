package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/domains/orders/ports"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Service orchestrates order registry use cases, consulting the user
// directory for validation and enrichment.
type Service struct {
	repo      ports.Repository
	directory ports.UserDirectory
	logger    *slog.Logger
}

type Option func(*Service)

// WithLogger sets the logger used for enrichment warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(repo ports.Repository, directory ports.UserDirectory, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		directory: directory,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (option.Option[*domain.Order], error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrdersByUser filters locally and never contacts the user registry.
func (s *Service) ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// CreateOrder validates the referenced user, then stores the order under a
// fresh id. Nothing is stored when the user cannot be confirmed.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := s.ValidateUser(ctx, order); err != nil {
		return nil, err
	}
	return s.PersistOrder(ctx, order)
}

// ValidateUser confirms the user referenced by the order exists.
func (s *Service) ValidateUser(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is nil", ErrInvalidInput)
	}
	if !s.directory.FetchUser(ctx, order.UserID).IsPresent() {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "rejecting order for unknown user", slog.Int64("user.id", order.UserID))
		return fmt.Errorf("%w: user %d", ErrUserNotFound, order.UserID)
	}
	return nil
}

// PersistOrder applies creation defaults and saves without re-validating the user.
func (s *Service) PersistOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: order is nil", ErrInvalidInput)
	}
	fresh := *order
	fresh.ID = 0
	fresh.ApplyCreationDefaults()
	return s.repo.Save(ctx, &fresh)
}

// UpdateOrder overwrites product name, quantity, total amount and status.
func (s *Service) UpdateOrder(ctx context.Context, id int64, patch *domain.Order) (option.Option[*domain.Order], error) {
	if patch == nil {
		return option.None[*domain.Order](), fmt.Errorf("%w: order is nil", ErrInvalidInput)
	}
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return option.None[*domain.Order](), err
	}
	existing, ok := found.Get()
	if !ok {
		return option.None[*domain.Order](), nil
	}
	existing.ApplyUpdate(*patch)
	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return option.None[*domain.Order](), err
	}
	return option.Some(saved), nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetOrderWithUser(ctx context.Context, id int64) (option.Option[domain.OrderWithUser], error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return option.None[domain.OrderWithUser](), err
	}
	order, ok := found.Get()
	if !ok {
		return option.None[domain.OrderWithUser](), nil
	}
	return option.Some(s.enrich(ctx, order)), nil
}

// ListOrdersWithUsers issues one user lookup per order, in id order.
func (s *Service) ListOrdersWithUsers(ctx context.Context) ([]domain.OrderWithUser, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.OrderWithUser, 0, len(orders))
	for _, order := range orders {
		result = append(result, s.enrich(ctx, order))
	}
	return result, nil
}

func (s *Service) enrich(ctx context.Context, order *domain.Order) domain.OrderWithUser {
	user := s.directory.FetchUser(ctx, order.UserID)
	if !user.IsPresent() {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "user unavailable for order",
			slog.Int64("order.id", order.ID), slog.Int64("user.id", order.UserID))
	}
	return domain.OrderWithUser{Order: order, User: user}
}

var _ ports.Service = (*Service)(nil)
