package queries

import (
	"context"

	"larica/internal/core/domain/model/restaurant"
	"larica/internal/core/ports"
)

// GetRestaurantQueryHandler fetches restaurant reference data.
type GetRestaurantQueryHandler struct {
	gateway ports.RestaurantProvider
}

// NewGetRestaurantQueryHandler creates a handler for restaurant queries.
func NewGetRestaurantQueryHandler(gateway ports.RestaurantProvider) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{gateway: gateway}
}

// Handle returns the restaurant snapshot.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return restaurant.Restaurant{}, err
	}

	return h.gateway.Restaurant(ctx, query.RestaurantID())
}
