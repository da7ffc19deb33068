package orders

import (
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/platform/temporal/sequences"
)

const (
	// OrderCreationWorkflowName is the public identifier for registering the workflow.
	OrderCreationWorkflowName = "orders.workflows.Creation"
	// OrderCreationTaskQueue is the base name of the queue consumed by the embedded order worker.
	OrderCreationTaskQueue = "ORDER_CREATION"
)

// InstanceTaskQueue names the creation queue owned by one order-service
// process. Each process keeps its own in-memory store, so its workflows must
// never be picked up by another replica's worker.
func InstanceTaskQueue(instanceID string) string {
	if instanceID == "" {
		return OrderCreationTaskQueue
	}
	return OrderCreationTaskQueue + "-" + instanceID
}

// OrderCreationWorkflowInput carries the order to create.
type OrderCreationWorkflowInput struct {
	Order   orderdomain.Order
	TraceID string
}

// OrderCreationWorkflow runs the order creation sequence.
func OrderCreationWorkflow(ctx workflow.Context, input OrderCreationWorkflowInput) (*orderdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderCreationWorkflow started", withTraceID(input.TraceID, "userId", input.Order.UserID)...)
	saved, err := sequences.RunOrderCreationSequence(ctx, input.Order)
	if err != nil {
		logger.Error("OrderCreationWorkflow failed", withTraceID(input.TraceID, "userId", input.Order.UserID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderCreationWorkflow completed", withTraceID(input.TraceID, "orderId", saved.ID)...)
	return saved, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
