package queries

import (
	"context"

	"larica/internal/core/domain/model/order"
	"larica/internal/core/ports"
)

// GetTrackedOrderQueryHandler fetches the authoritative state of one order.
type GetTrackedOrderQueryHandler struct {
	gateway ports.OrderProvider
}

// NewGetTrackedOrderQueryHandler creates a handler for tracking queries.
func NewGetTrackedOrderQueryHandler(gateway ports.OrderProvider) GetTrackedOrderQueryHandler {
	return GetTrackedOrderQueryHandler{gateway: gateway}
}

// Handle returns the order as the backend currently records it.
func (h GetTrackedOrderQueryHandler) Handle(ctx context.Context, query GetTrackedOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.gateway.Order(ctx, query.OrderID())
}
