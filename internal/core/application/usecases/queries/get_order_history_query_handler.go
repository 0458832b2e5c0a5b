package queries

import (
	"context"
	"sort"

	"larica/internal/core/domain/model/order"
	"larica/internal/core/ports"
)

// GetOrderHistoryQueryHandler loads, orders and totals a history list.
//
// Ordering is deterministic even when two orders share a second-granularity
// timestamp: newest first, ties broken by id descending. Totals are
// recomputed from the item snapshots on every load.
type GetOrderHistoryQueryHandler struct {
	gateway ports.HistoryProvider
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(gateway ports.HistoryProvider) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{gateway: gateway}
}

// Handle executes the query and returns the owner's past orders,
// most recent first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	switch query.OwnerKind() {
	case OwnerRestaurant:
		orders, err = h.gateway.RestaurantOrders(ctx, query.OwnerID())
	default:
		orders, err = h.gateway.CustomerOrders(ctx, query.OwnerID())
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt().Equal(orders[j].CreatedAt()) {
			return orders[i].CreatedAt().After(orders[j].CreatedAt())
		}
		return orders[i].ID() > orders[j].ID()
	})

	responses := make([]GetOrderHistoryQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toHistoryResponse(o))
	}

	return responses, nil
}

func toHistoryResponse(o *order.Order) GetOrderHistoryQueryResponse {
	items := make([]GetOrderHistoryItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, GetOrderHistoryItemResponse{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return GetOrderHistoryQueryResponse{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.RestaurantID(),
		Status:       o.Status(),
		CreatedAt:    o.CreatedAt(),
		Items:        items,
		Total:        o.Total(),
	}
}
