package ports

import (
	"context"

	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Service exposes order registry use cases to adapters.
type Service interface {
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (option.Option[*domain.Order], error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch *domain.Order) (option.Option[*domain.Order], error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
	GetOrderWithUser(ctx context.Context, id int64) (option.Option[domain.OrderWithUser], error)
	ListOrdersWithUsers(ctx context.Context) ([]domain.OrderWithUser, error)
}
