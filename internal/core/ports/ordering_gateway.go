// Package ports defines the outbound contracts the application core depends
// on. All durable state lives behind the restaurant platform's REST API;
// the gateway interfaces below are its abstraction, implemented by the
// backendapi adapter and mocked in handler tests.
package ports

import (
	"context"

	"larica/internal/core/domain/model/kernel"
	"larica/internal/core/domain/model/order"
	"larica/internal/core/domain/model/product"
	"larica/internal/core/domain/model/restaurant"
)

// SubmissionItem is one product/quantity pair of an order submission.
// Prices are deliberately absent: the backend is the source of truth for
// pricing at order time.
type SubmissionItem struct {
	ProductID int64
	Quantity  int
}

// OrderSubmission is the payload for creating an order. The idempotency key
// is client-generated so a retried submission cannot create a duplicate.
type OrderSubmission struct {
	CustomerID     int64
	RestaurantID   int64
	Items          []SubmissionItem
	IdempotencyKey kernel.UUID
}

// CatalogProvider fetches the purchasable products of a restaurant.
type CatalogProvider interface {
	Catalog(ctx context.Context, restaurantID int64) ([]product.Product, error)
}

// OrderSubmitter persists a new order and returns its backend-assigned id.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, submission OrderSubmission) (int64, error)
}

// OrderStatusUpdater requests a transition by sending the TARGET state to
// the backend and returns the authoritative updated order. The client never
// infers a new state locally without this confirmation.
type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, restaurantID, orderID int64, target order.Status) (*order.Order, error)
}

// OrderProvider fetches a single order by id.
type OrderProvider interface {
	Order(ctx context.Context, orderID int64) (*order.Order, error)
}

// HistoryProvider fetches the flat lists of past orders per owner.
type HistoryProvider interface {
	CustomerOrders(ctx context.Context, customerID int64) ([]*order.Order, error)
	RestaurantOrders(ctx context.Context, restaurantID int64) ([]*order.Order, error)
}

// RestaurantProvider fetches restaurant reference data.
type RestaurantProvider interface {
	Restaurant(ctx context.Context, restaurantID int64) (restaurant.Restaurant, error)
}

// OrderingGateway is the complete outbound surface of the restaurant
// platform consumed by this client.
type OrderingGateway interface {
	CatalogProvider
	OrderSubmitter
	OrderStatusUpdater
	OrderProvider
	HistoryProvider
	RestaurantProvider
}
