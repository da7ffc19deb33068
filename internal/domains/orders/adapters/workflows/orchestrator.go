package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/user-order-services/internal/domains/orders/application"
	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/user-order-services/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/user-order-services/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.CreationOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.CreationOrchestrator = (*InlineOrderWorkflows)(nil)
)

// WorkflowStarter is the part of the Temporal client the orchestrator uses.
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// TemporalOrderWorkflows runs order creation as a Temporal workflow and waits for its result.
type TemporalOrderWorkflows struct {
	client    WorkflowStarter
	taskQueue string
}

// NewTemporalOrderWorkflows starts workflows on taskQueue, or on
// OrderCreationTaskQueue when taskQueue is empty. The queue must be the one
// polled by the worker that shares this process's order store.
func NewTemporalOrderWorkflows(c WorkflowStarter, taskQueue string) *TemporalOrderWorkflows {
	if taskQueue == "" {
		taskQueue = orderworkflows.OrderCreationTaskQueue
	}
	return &TemporalOrderWorkflows{client: c, taskQueue: taskQueue}
}

// CreateOrder maps the workflow's unknown-user failure back to ErrUserNotFound.
func (o *TemporalOrderWorkflows) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order is nil", orderapp.ErrInvalidInput)
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("order-creation-%d-%s", order.UserID, traceComponent),
		TaskQueue:             o.taskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderCreationWorkflowName,
		orderworkflows.OrderCreationWorkflowInput{Order: *order, TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		return nil, err
	}
	var saved domain.Order
	if err := run.Get(ctx, &saved); err != nil {
		return nil, mapWorkflowError(err)
	}
	return &saved, nil
}

// InlineOrderWorkflows creates orders synchronously through the service.
type InlineOrderWorkflows struct {
	service ports.Service
}

func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

func (o *InlineOrderWorkflows) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.CreateOrder(ctx, order)
}

func mapWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == orderactivities.UserNotFoundErrorType {
		return fmt.Errorf("%w: %s", orderapp.ErrUserNotFound, appErr.Error())
	}
	return err
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID + fmt.Sprintf("-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
