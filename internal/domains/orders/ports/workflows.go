package ports

import (
	"context"

	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
)

// CreationOrchestrator runs order creation either inline or as a durable workflow.
type CreationOrchestrator interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
}
