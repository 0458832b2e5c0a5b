package queries

import (
	"errors"
	"fmt"
	"time"

	"larica/internal/core/domain/model/order"
	"larica/internal/pkg/errs"
	"larica/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// OwnerKind selects whose order history is being reconstructed.
type OwnerKind int

const (
	// OwnerUnknown is the invalid zero value.
	OwnerUnknown OwnerKind = iota

	// OwnerCustomer loads the history of one customer across restaurants.
	OwnerCustomer

	// OwnerRestaurant loads the order board of one restaurant.
	OwnerRestaurant
)

// String returns the lowercase name used in routes and logs.
func (k OwnerKind) String() string {
	switch k {
	case OwnerCustomer:
		return "customer"
	case OwnerRestaurant:
		return "restaurant"
	default:
		return "unknown"
	}
}

// Validate checks the kind is one of the two valid owners.
func (k OwnerKind) Validate() error {
	if k != OwnerCustomer && k != OwnerRestaurant {
		return errs.NewValueIsInvalidErrorWithCause("owner kind",
			fmt.Errorf("%d is not a valid owner kind", k))
	}
	return nil
}

// GetOrderHistoryQuery reconstructs the past orders of a customer or a
// restaurant from the backend's flat lists.
type GetOrderHistoryQuery struct {
	ownerKind OwnerKind
	ownerID   int64

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query for the given owner.
func NewGetOrderHistoryQuery(ownerKind OwnerKind, ownerID int64) (GetOrderHistoryQuery, error) {
	if err := ownerKind.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	if ownerID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("owner id",
			fmt.Errorf("%d is not a positive identifier", ownerID))
	}

	return GetOrderHistoryQuery{
		ownerKind: ownerKind,
		ownerID:   ownerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OwnerKind returns whose history is requested.
func (q GetOrderHistoryQuery) OwnerKind() OwnerKind {
	return q.ownerKind
}

// OwnerID returns the id of the customer or restaurant.
func (q GetOrderHistoryQuery) OwnerID() int64 {
	return q.ownerID
}

// GetOrderHistoryItemResponse is one item snapshot of a historical order.
// Degraded records carry a placeholder product name and a zero unit price.
type GetOrderHistoryItemResponse struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// GetOrderHistoryQueryResponse is one reconstructed past order. Total is
// recomputed from the item snapshots, never trusted from the backend.
type GetOrderHistoryQueryResponse struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	Status       order.Status
	CreatedAt    time.Time
	Items        []GetOrderHistoryItemResponse
	Total        decimal.Decimal
}
