package queries

import (
	"errors"
	"fmt"

	"larica/internal/pkg/errs"
	"larica/internal/pkg/guard"
)

var (
	ErrGetTrackedOrderQueryIsNotConstructed = errors.New(
		"GetTrackedOrderQuery must be created via NewGetTrackedOrderQuery constructor",
	)
)

// GetTrackedOrderQuery re-fetches one order so a shopper or courier screen
// can observe its current status. Status visibility is refresh-on-demand:
// there is no push channel, callers simply run this query again.
type GetTrackedOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetTrackedOrderQuery creates a tracking query for the given order.
func NewGetTrackedOrderQuery(orderID int64) (GetTrackedOrderQuery, error) {
	if orderID <= 0 {
		return GetTrackedOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}

	return GetTrackedOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedOrderQueryIsNotConstructed)
}

// OrderID returns the order being tracked.
func (q GetTrackedOrderQuery) OrderID() int64 {
	return q.orderID
}
