package commands

import (
	"context"
	"fmt"

	"larica/internal/core/domain/model/order"
	"larica/internal/core/ports"
	"larica/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler enacts the order status state machine.
//
// The handler fetches the authoritative current order, checks the requested
// edge against the fixed transition table, and only then sends the TARGET
// state to the backend. The backend's response is the new truth: the handler
// returns the updated order for callers to re-render from, and callers
// refresh dependent views by re-querying rather than patching their prior
// snapshot.
//
// Failure semantics: an illegal transition is rejected locally with no
// network call; a backend failure is surfaced verbatim and never retried —
// either way the order's last observed status stands.
type ChangeOrderStatusCommandHandler struct {
	orders  ports.OrderProvider
	updater ports.OrderStatusUpdater
}

// NewChangeOrderStatusCommandHandler creates a handler for operator-driven
// status transitions.
func NewChangeOrderStatusCommandHandler(
	orders ports.OrderProvider,
	updater ports.OrderStatusUpdater,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders, updater: updater}
}

// Handle performs the transition and returns the backend-confirmed order.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orders.Order(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if current.RestaurantID() != cmd.RestaurantID() {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", fmt.Sprint(cmd.OrderID()),
			fmt.Errorf("order belongs to restaurant %d", current.RestaurantID()))
	}

	if !current.Status().CanTransitionTo(cmd.Target()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s -> %s is not a legal transition", current.Status(), cmd.Target()))
	}

	return h.updater.UpdateOrderStatus(ctx, cmd.RestaurantID(), cmd.OrderID(), cmd.Target())
}
