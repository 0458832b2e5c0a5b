package queries

import (
	"errors"
	"fmt"

	"larica/internal/pkg/errs"
	"larica/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery retrieves the purchasable products of one restaurant.
// The catalog is owned by the backend; the client consumes read-only
// snapshots that cart lines then reference.
type GetCatalogQuery struct {
	restaurantID int64

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog query for the given restaurant.
func NewGetCatalogQuery(restaurantID int64) (GetCatalogQuery, error) {
	if restaurantID <= 0 {
		return GetCatalogQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not a positive identifier", restaurantID))
	}

	return GetCatalogQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose catalog is requested.
func (q GetCatalogQuery) RestaurantID() int64 {
	return q.restaurantID
}
