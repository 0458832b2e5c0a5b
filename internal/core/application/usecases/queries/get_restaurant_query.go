package queries

import (
	"errors"
	"fmt"

	"larica/internal/pkg/errs"
	"larica/internal/pkg/guard"
)

var (
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
	)
)

// GetRestaurantQuery retrieves one restaurant's reference data, used for
// display and for composing courier dispatch messages.
type GetRestaurantQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a restaurant query.
func NewGetRestaurantQuery(restaurantID int64) (GetRestaurantQuery, error) {
	if restaurantID <= 0 {
		return GetRestaurantQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not a positive identifier", restaurantID))
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the requested restaurant.
func (q GetRestaurantQuery) RestaurantID() int64 {
	return q.restaurantID
}
