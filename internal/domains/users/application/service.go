package application

import (
	"context"
	"fmt"

	"github.com/Apurer/user-order-services/internal/domains/users/domain"
	"github.com/Apurer/user-order-services/internal/domains/users/ports"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Service exposes user registry use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (option.Option[*domain.User], error) {
	return s.repo.GetByID(ctx, id)
}

// CreateUser always stores the user under a freshly generated id.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", ErrInvalidInput)
	}
	fresh := *user
	fresh.ID = 0
	return s.repo.Save(ctx, &fresh)
}

// UpdateUser overwrites username, email and full name of an existing user.
func (s *Service) UpdateUser(ctx context.Context, id int64, patch *domain.User) (option.Option[*domain.User], error) {
	if patch == nil {
		return option.None[*domain.User](), fmt.Errorf("%w: user is nil", ErrInvalidInput)
	}
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return option.None[*domain.User](), err
	}
	existing, ok := found.Get()
	if !ok {
		return option.None[*domain.User](), nil
	}
	existing.UpdateProfile(patch.Username, patch.Email, patch.FullName)
	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return option.None[*domain.User](), err
	}
	return option.Some(saved), nil
}

// DeleteUser reports whether a user existed and was removed.
func (s *Service) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
