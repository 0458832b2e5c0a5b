package product

import (
	"fmt"

	"larica/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Product is an immutable snapshot of a catalog item as fetched from the
// restaurant platform. It carries the restaurant it belongs to so that the
// cart can enforce its single-restaurant invariant.
//
// Product uses private fields to keep the snapshot immutable and can only
// be created through NewProduct.
type Product struct {
	id           int64
	restaurantID int64
	name         string
	unitPrice    decimal.Decimal
}

// NewProduct creates a validated Product snapshot.
//
// Validation rules:
//   - id and restaurantID must be positive (backend-assigned identifiers)
//   - name must not be empty
//   - unitPrice must not be negative
func NewProduct(id, restaurantID int64, name string, unitPrice decimal.Decimal) (Product, error) {
	if id <= 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("product id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if restaurantID <= 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not a positive identifier", restaurantID))
	}
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("product name")
	}
	if unitPrice.IsNegative() {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return Product{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		unitPrice:    unitPrice,
	}, nil
}

// ID returns the backend-assigned product identifier.
func (p Product) ID() int64 {
	return p.id
}

// RestaurantID returns the identifier of the restaurant offering the product.
func (p Product) RestaurantID() int64 {
	return p.restaurantID
}

// Name returns the display name of the product.
func (p Product) Name() string {
	return p.name
}

// UnitPrice returns the catalog price at snapshot time.
func (p Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// Validate reports whether the product was created through NewProduct.
// A zero-value Product has id 0 and is therefore invalid.
func (p Product) Validate() error {
	if p.id <= 0 {
		return errs.NewValueIsRequiredError("Product must be created via NewProduct constructor")
	}
	return nil
}
