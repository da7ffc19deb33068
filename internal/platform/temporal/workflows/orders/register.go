package orders

import (
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/workflow"

	orderactivities "github.com/Apurer/user-order-services/internal/platform/temporal/activities/orders"
)

// Registry is satisfied by a Temporal worker and by the SDK test environment.
type Registry interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register wires the order creation workflow and its activities under their public names.
func Register(r Registry, activities *orderactivities.Activities) {
	r.RegisterWorkflowWithOptions(OrderCreationWorkflow, workflow.RegisterOptions{Name: OrderCreationWorkflowName})
	r.RegisterActivityWithOptions(activities.ValidateUser, activity.RegisterOptions{Name: orderactivities.ValidateUserActivityName})
	r.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})
}
