package commands

import (
	"errors"

	"larica/internal/core/domain/model/cart"
	"larica/internal/core/domain/model/kernel"
	"larica/internal/core/ports"
	"larica/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrCartIsEmpty = errors.New("cart is empty")
)

// SubmitOrderCommand represents a request to turn a cart into a persisted
// order. The constructor captures an immutable snapshot of the cart, so the
// shopper can keep editing the cart while a submission is in flight without
// affecting the payload, and generates the idempotency key that makes a
// retried submission safe.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     int64
	restaurantID   int64
	items          []ports.SubmissionItem
	idempotencyKey kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand validates the cart at the submission boundary and
// snapshots it into a command.
//
// The cart invariants are re-checked here as defense in depth, even though
// the cart enforces them on every mutation: an empty cart fails with
// ErrCartIsEmpty, and lines spanning more than one restaurant fail with
// cart.ErrMixedRestaurantCart. Either way no network call is made and the
// cart is left untouched.
func NewSubmitOrderCommand(c *cart.Cart) (SubmitOrderCommand, error) {
	if err := c.Validate(); err != nil {
		return SubmitOrderCommand{}, err
	}
	if c.IsEmpty() {
		return SubmitOrderCommand{}, ErrCartIsEmpty
	}

	lines := c.Lines()
	restaurantID := lines[0].Product().RestaurantID()
	items := make([]ports.SubmissionItem, 0, len(lines))
	for _, line := range lines {
		if line.Product().RestaurantID() != restaurantID {
			return SubmitOrderCommand{}, cart.ErrMixedRestaurantCart
		}
		items = append(items, ports.SubmissionItem{
			ProductID: line.Product().ID(),
			Quantity:  line.Quantity(),
		})
	}

	return SubmitOrderCommand{
		customerID:     c.CustomerID(),
		restaurantID:   restaurantID,
		items:          items,
		idempotencyKey: kernel.NewUUID(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the customer submitting the order.
func (c SubmitOrderCommand) CustomerID() int64 {
	return c.customerID
}

// RestaurantID returns the single restaurant all items belong to.
func (c SubmitOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// IdempotencyKey returns the client-generated key for this submission.
func (c SubmitOrderCommand) IdempotencyKey() kernel.UUID {
	return c.idempotencyKey
}

// Submission returns the gateway payload built from the cart snapshot.
// Prices are not part of it; the backend prices the order at creation time.
func (c SubmitOrderCommand) Submission() ports.OrderSubmission {
	items := make([]ports.SubmissionItem, len(c.items))
	copy(items, c.items)

	return ports.OrderSubmission{
		CustomerID:     c.customerID,
		RestaurantID:   c.restaurantID,
		Items:          items,
		IdempotencyKey: c.idempotencyKey,
	}
}
