package commands

import (
	"errors"
	"fmt"

	"larica/internal/core/domain/model/order"
	"larica/internal/pkg/errs"
	"larica/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a restaurant operator's request to
// move an order to a target status: accepting (PREPARING), rejecting
// (CANCELLED), marking ready (READY) or delivered (DELIVERED). Whether the
// edge is legal is decided against the order's current status by the
// handler, never by the caller.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	restaurantID int64
	orderID      int64
	target       order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-change request.
// The target must be a valid status; identifiers must be positive.
func NewChangeOrderStatusCommand(restaurantID, orderID int64, target order.Status) (ChangeOrderStatusCommand, error) {
	if restaurantID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not a positive identifier", restaurantID))
	}
	if orderID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}
	if err := target.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		restaurantID: restaurantID,
		orderID:      orderID,
		target:       target,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// RestaurantID returns the id of the restaurant acting on the order.
func (c ChangeOrderStatusCommand) RestaurantID() int64 {
	return c.restaurantID
}

// OrderID returns the id of the order being transitioned.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Target returns the requested target status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}
