package ports

import (
	"context"

	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Repository stores orders keyed by id and owns id generation.
type Repository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int64) (option.Option[*domain.Order], error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
