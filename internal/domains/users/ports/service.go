package ports

import (
	"context"

	"github.com/Apurer/user-order-services/internal/domains/users/domain"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Service exposes user registry use cases to adapters.
type Service interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id int64) (option.Option[*domain.User], error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, patch *domain.User) (option.Option[*domain.User], error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}
