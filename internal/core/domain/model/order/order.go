package order

import (
	"errors"
	"fmt"
	"time"

	"larica/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Item is a snapshot of one order line at order time: product name and unit
// price are copied from the catalog when the order is created, so that
// historical totals stay stable even if catalog prices change later.
//
// A degraded historical record (missing product reference) is represented
// with a placeholder name and a zero unit price rather than being dropped.
type Item struct {
	id          int64
	productName string
	quantity    int
	unitPrice   decimal.Decimal
}

// NewItem creates an order line snapshot.
//
// Validation rules:
//   - productName must not be empty (callers substitute a placeholder for
//     missing references before constructing the item)
//   - quantity must not be negative
//   - unitPrice must not be negative
//
// The line id is backend-assigned and may be zero on deployments that do
// not expose it.
func NewItem(id int64, productName string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return Item{
		id:          id,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ID returns the backend-assigned line identifier, 0 when not exposed.
func (i Item) ID() int64 {
	return i.id
}

// ProductName returns the product name snapshot.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unit price for the line.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Order represents a submitted, backend-persisted purchase.
//
// Order follows these invariants:
//   - the id is backend-assigned and positive
//   - items are never re-ordered or mutated after creation
//   - the total always equals the sum of the item subtotals, recomputed on
//     every call rather than cached
//   - the status is one of the five valid states; changing it goes through
//     the backend, never through local mutation
type Order struct {
	id           int64
	customerID   int64
	restaurantID int64
	items        []Item
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder reconstructs an order from backend data. The items slice is
// copied; callers cannot alter the order through the slice afterwards.
func NewOrder(
	id int64,
	customerID int64,
	restaurantID int64,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	copied := make([]Item, len(items))
	copy(copied, items)

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		items:         copied,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the backend-assigned order identifier.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the id of the customer who placed the order,
// 0 when the owning deployment does not expose it on this view.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// RestaurantID returns the id of the restaurant fulfilling the order.
func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// Items returns a copy of the item snapshots in their original order.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Status returns the last status observed from the backend.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the backend-recorded creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of quantity × unit price over the item snapshots.
// It is recomputed on every call so it can never drift from the items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
