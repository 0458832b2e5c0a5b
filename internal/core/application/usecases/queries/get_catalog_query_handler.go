package queries

import (
	"context"

	"larica/internal/core/domain/model/product"
	"larica/internal/core/ports"
)

// GetCatalogQueryHandler fetches product snapshots for one restaurant.
type GetCatalogQueryHandler struct {
	gateway ports.CatalogProvider
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
func NewGetCatalogQueryHandler(gateway ports.CatalogProvider) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{gateway: gateway}
}

// Handle returns the restaurant's products in backend order.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.gateway.Catalog(ctx, query.RestaurantID())
}
