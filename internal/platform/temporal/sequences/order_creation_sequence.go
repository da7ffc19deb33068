package sequences

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/user-order-services/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/user-order-services/internal/platform/temporal/activities/orders"
)

// ActivityStartToCloseTimeout bounds a single activity attempt. It sits well
// above any user service timeout so the HTTP client decides when a lookup fails.
const ActivityStartToCloseTimeout = 10 * time.Minute

// RunOrderCreationSequence validates the referenced user, then persists the
// order. Each activity runs exactly once. Any validate failure, timeouts
// included, surfaces as a UserNotFound application error.
func RunOrderCreationSequence(ctx workflow.Context, order orderdomain.Order) (*orderdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order creation sequence started", "userId", order.UserID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: ActivityStartToCloseTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, orderactivities.ValidateUserActivityName, order).Get(ctx, nil); err != nil {
		logger.Warn("order creation sequence rejected", "userId", order.UserID, "error", err)
		return nil, asUserNotFound(err)
	}

	var saved orderdomain.Order
	if err := workflow.ExecuteActivity(ctx, orderactivities.PersistOrderActivityName, order).Get(ctx, &saved); err != nil {
		logger.Error("order creation sequence failed", "userId", order.UserID, "error", err)
		return nil, err
	}
	logger.Info("order creation sequence persisted", "orderId", saved.ID)
	return &saved, nil
}

func asUserNotFound(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == orderactivities.UserNotFoundErrorType {
		return err
	}
	return temporal.NewNonRetryableApplicationError("referenced user could not be confirmed", orderactivities.UserNotFoundErrorType, err)
}
