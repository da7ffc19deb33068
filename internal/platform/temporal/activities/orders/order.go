package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/user-order-services/internal/domains/orders/application"
	orderdomain "github.com/Apurer/user-order-services/internal/domains/orders/domain"
)

const (
	// ValidateUserActivityName confirms the user referenced by an order exists.
	ValidateUserActivityName = "orders.activities.ValidateUser"
	// PersistOrderActivityName stores an order that already passed validation.
	PersistOrderActivityName = "orders.activities.PersistOrder"
	// UserNotFoundErrorType tags the non-retryable failure raised for unknown users.
	UserNotFoundErrorType = "UserNotFound"
)

// OrderCreator is the slice of the order application service the activities drive.
type OrderCreator interface {
	ValidateUser(ctx context.Context, order *orderdomain.Order) error
	PersistOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error)
}

// Activities groups the order creation steps executed by the worker.
type Activities struct {
	creator OrderCreator
}

func NewActivities(creator OrderCreator) *Activities {
	return &Activities{creator: creator}
}

// ValidateUser fails with a non-retryable application error when the user is unknown.
func (a *Activities) ValidateUser(ctx context.Context, order orderdomain.Order) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.creator == nil {
		logger.Error("order validate activity not initialized", "userId", order.UserID)
		return errors.New("order validate activity not initialized")
	}
	logger.Info("ValidateUser activity started", "userId", order.UserID)
	if err := a.creator.ValidateUser(ctx, &order); err != nil {
		logger.Warn("ValidateUser activity rejected order", "userId", order.UserID, "error", err)
		if errors.Is(err, orderapp.ErrUserNotFound) {
			return temporal.NewNonRetryableApplicationError(err.Error(), UserNotFoundErrorType, err)
		}
		return err
	}
	return nil
}

// PersistOrder stores the order and returns it with id and timestamp assigned.
func (a *Activities) PersistOrder(ctx context.Context, order orderdomain.Order) (*orderdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.creator == nil {
		logger.Error("order persist activity not initialized", "userId", order.UserID)
		return nil, errors.New("order persist activity not initialized")
	}
	saved, err := a.creator.PersistOrder(ctx, &order)
	if err != nil {
		logger.Error("PersistOrder activity failed", "userId", order.UserID, "error", err)
		return nil, err
	}
	logger.Info("PersistOrder activity completed", "orderId", saved.ID)
	return saved, nil
}
