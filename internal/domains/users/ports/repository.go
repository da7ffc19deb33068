package ports

import (
	"context"

	"github.com/Apurer/user-order-services/internal/domains/users/domain"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Repository stores users keyed by id and owns id generation.
type Repository interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (option.Option[*domain.User], error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
