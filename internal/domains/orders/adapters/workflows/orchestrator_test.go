package workflows

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/user-order-services/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/user-order-services/internal/domains/orders/application"
	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/user-order-services/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/user-order-services/internal/platform/temporal/workflows/orders"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

type singleUser int64

func (s singleUser) FetchUser(_ context.Context, userID int64) option.Option[domain.UserSnapshot] {
	if userID == int64(s) {
		return option.Some(domain.UserSnapshot{ID: userID})
	}
	return option.None[domain.UserSnapshot]()
}

type fakeRun struct {
	client.WorkflowRun
	result *domain.Order
	err    error
}

func (r fakeRun) Get(_ context.Context, valuePtr interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(valuePtr.(*domain.Order)) = *r.result
	return nil
}

type fakeStarter struct {
	options client.StartWorkflowOptions
	input   orderworkflows.OrderCreationWorkflowInput
	run     fakeRun
}

func (f *fakeStarter) ExecuteWorkflow(_ context.Context, options client.StartWorkflowOptions, _ interface{}, args ...interface{}) (client.WorkflowRun, error) {
	f.options = options
	f.input = args[0].(orderworkflows.OrderCreationWorkflowInput)
	return f.run, nil
}

func TestInlineOrderWorkflows_DelegatesToService(t *testing.T) {
	repo := memory.NewRepository()
	orchestrator := NewInlineOrderWorkflows(orderapp.NewService(repo, singleUser(1)))

	saved, err := orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 1, ProductName: "Monitor", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	_, err = orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 2, ProductName: "Monitor", Quantity: 1})
	require.ErrorIs(t, err, orderapp.ErrUserNotFound)
	assert.Equal(t, 1, repo.Count())
}

func TestTemporalOrderWorkflows_ReturnsWorkflowResult(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	starter := &fakeStarter{run: fakeRun{result: &domain.Order{ID: 4, UserID: 1, ProductName: "Monitor", Status: domain.StatusPending, CreatedAt: created}}}
	orchestrator := NewTemporalOrderWorkflows(starter, "")

	saved, err := orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 1, ProductName: "Monitor", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.ID)
	assert.Equal(t, orderworkflows.OrderCreationTaskQueue, starter.options.TaskQueue)
	assert.Contains(t, starter.options.ID, "order-creation-1-")
	assert.Equal(t, enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE, starter.options.WorkflowIDReusePolicy)
	assert.Equal(t, "Monitor", starter.input.Order.ProductName)
}

func TestTemporalOrderWorkflows_MapsUnknownUser(t *testing.T) {
	appErr := temporal.NewNonRetryableApplicationError("referenced user not found", orderactivities.UserNotFoundErrorType, nil)
	starter := &fakeStarter{run: fakeRun{err: fmt.Errorf("workflow failed: %w", appErr)}}
	orchestrator := NewTemporalOrderWorkflows(starter, "")

	_, err := orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 999})
	require.ErrorIs(t, err, orderapp.ErrUserNotFound)
}

func TestTemporalOrderWorkflows_PassesOtherErrorsThrough(t *testing.T) {
	boom := errors.New("history service unavailable")
	orchestrator := NewTemporalOrderWorkflows(&fakeStarter{run: fakeRun{err: boom}}, "")

	_, err := orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 1})
	require.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, orderapp.ErrUserNotFound))
}

func TestTemporalOrderWorkflows_MapsValidationTimeout(t *testing.T) {
	timeout := temporal.NewTimeoutError(enumspb.TIMEOUT_TYPE_START_TO_CLOSE, context.DeadlineExceeded)
	appErr := temporal.NewNonRetryableApplicationError("referenced user could not be confirmed", orderactivities.UserNotFoundErrorType, timeout)
	starter := &fakeStarter{run: fakeRun{err: fmt.Errorf("workflow failed: %w", appErr)}}
	orchestrator := NewTemporalOrderWorkflows(starter, "")

	_, err := orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 1})
	require.ErrorIs(t, err, orderapp.ErrUserNotFound)
}

func TestTemporalOrderWorkflows_StartsOnInstanceQueue(t *testing.T) {
	starter := &fakeStarter{run: fakeRun{result: &domain.Order{ID: 4, UserID: 1}}}
	queue := orderworkflows.InstanceTaskQueue("replica-a")
	orchestrator := NewTemporalOrderWorkflows(starter, queue)

	_, err := orchestrator.CreateOrder(context.Background(), &domain.Order{UserID: 1, ProductName: "Monitor", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "ORDER_CREATION-replica-a", starter.options.TaskQueue)
}
