package cart

import (
	"errors"
	"fmt"

	"larica/internal/core/domain/model/product"
	"larica/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not
	// created through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrMixedRestaurantCart is returned when a product from a different
	// restaurant is added to a non-empty cart. All items of an order must
	// come from the same restaurant; the caller must clear the cart first.
	ErrMixedRestaurantCart = errors.New("all cart items must belong to the same restaurant")
)

// Line is one product/quantity pair inside a cart. It references a product
// snapshot; quantity is always positive — a line whose quantity would reach
// zero is removed instead.
type Line struct {
	product  product.Product
	quantity int
}

// Product returns the referenced product snapshot.
func (l Line) Product() product.Product {
	return l.product
}

// Quantity returns the current quantity of the line.
func (l Line) Quantity() int {
	return l.quantity
}

// Cart holds the in-progress selection of one customer for one restaurant.
//
// Cart follows these invariants:
//   - it is exclusively owned by the customer session that created it
//   - every line references a product of the same restaurant
//   - line quantities are positive
//   - the total is recomputed from the lines on every call, never cached
//
// Cart is synchronous and has no side effects beyond its own state.
type Cart struct {
	customerID    int64
	restaurantID  int64
	lines         []Line
	isConstructed bool
}

// NewCart creates an empty cart owned by the given customer session.
// The owning session is explicit in the constructor so that ownership and
// lifetime are visible in type signatures instead of ambient state.
func NewCart(customerID int64) (*Cart, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%d is not a positive identifier", customerID))
	}

	return &Cart{
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// Validate ensures the cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the id of the session owning the cart.
func (c *Cart) CustomerID() int64 {
	return c.customerID
}

// RestaurantID returns the restaurant the cart is bound to,
// or 0 while the cart is empty.
func (c *Cart) RestaurantID() int64 {
	return c.restaurantID
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddItem adds one unit of the product to the cart. An existing line for
// the same product is incremented; otherwise a new line with quantity 1 is
// appended. Adding a product from a different restaurant than the existing
// lines fails with ErrMixedRestaurantCart and leaves the cart unchanged.
func (c *Cart) AddItem(p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if c.restaurantID != 0 && p.RestaurantID() != c.restaurantID {
		return ErrMixedRestaurantCart
	}

	for i := range c.lines {
		if c.lines[i].product.ID() == p.ID() {
			c.lines[i].quantity++
			return nil
		}
	}

	c.lines = append(c.lines, Line{product: p, quantity: 1})
	c.restaurantID = p.RestaurantID()
	return nil
}

// RemoveItem removes one unit of the product from the cart. A line at
// quantity 1 is deleted; a product not present in the cart is ignored.
// Deleting the last line unbinds the cart from its restaurant.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].product.ID() != productID {
			continue
		}

		if c.lines[i].quantity > 1 {
			c.lines[i].quantity--
			return
		}

		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		if len(c.lines) == 0 {
			c.restaurantID = 0
		}
		return
	}
}

// SetQuantity sets the quantity of an existing line. A quantity below 1 is
// a no-op rather than an implicit removal, and a product not present in the
// cart is ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		return
	}

	for i := range c.lines {
		if c.lines[i].product.ID() == productID {
			c.lines[i].quantity = quantity
			return
		}
	}
}

// Total returns the sum of quantity × unit price over all lines.
// It is recomputed on every call so it can never drift from the lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.product.UnitPrice().Mul(decimal.NewFromInt(int64(line.quantity))))
	}
	return total
}

// Clear empties the cart and unbinds it from its restaurant. It is called
// after a confirmed successful submission or an explicit shopper reset.
func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = 0
}
