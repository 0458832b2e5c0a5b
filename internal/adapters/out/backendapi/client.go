package backendapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"larica/internal/core/domain/model/order"
	"larica/internal/core/domain/model/product"
	"larica/internal/core/domain/model/restaurant"
	"larica/internal/core/ports"
	"larica/internal/pkg/errs"
)

// idempotencyKeyHeader carries the client-generated submission key so a
// retried POST cannot create a duplicate order.
const idempotencyKeyHeader = "Idempotency-Key"

const defaultTimeout = 10 * time.Second

// Client implements ports.OrderingGateway against the restaurant platform.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a gateway client for the platform at baseURL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("base url")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

// Catalog fetches the purchasable products of a restaurant.
func (c *Client) Catalog(ctx context.Context, restaurantID int64) ([]product.Product, error) {
	var dtos []productDTO
	path := fmt.Sprintf("/catalog/%d", restaurantID)
	if err := c.send(ctx, http.MethodGet, []string{path}, nil, nil, nil, &dtos); err != nil {
		return nil, notFoundAs(err, "catalog", restaurantID)
	}

	products := make([]product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomainProduct(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// SubmitOrder posts a new order, falling back to the legacy route when the
// primary one is absent, and returns the backend-assigned id.
func (c *Client) SubmitOrder(ctx context.Context, submission ports.OrderSubmission) (int64, error) {
	if err := submission.IdempotencyKey.Validate(); err != nil {
		return 0, err
	}

	header := http.Header{}
	header.Set(idempotencyKeyHeader, submission.IdempotencyKey.String())

	var resp submitOrderResponseDTO
	err := c.send(ctx, http.MethodPost, submitOrderCandidates(),
		nil, header, fromSubmission(submission), &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateOrderStatus patches the target state to the backend and returns the
// authoritative updated order.
func (c *Client) UpdateOrderStatus(
	ctx context.Context,
	restaurantID, orderID int64,
	target order.Status,
) (*order.Order, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/restaurants/%d/orders/%d/status", restaurantID, orderID)
	query := url.Values{"status": []string{target.String()}}

	var dto orderDTO
	if err := c.send(ctx, http.MethodPatch, []string{path}, query, nil, nil, &dto); err != nil {
		return nil, notFoundAs(err, "order", orderID)
	}
	return toDomainOrder(dto)
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto orderDTO
	path := fmt.Sprintf("/orders/%d", orderID)
	if err := c.send(ctx, http.MethodGet, []string{path}, nil, nil, nil, &dto); err != nil {
		return nil, notFoundAs(err, "order", orderID)
	}
	return toDomainOrder(dto)
}

// CustomerOrders fetches the flat order history of one customer.
func (c *Client) CustomerOrders(ctx context.Context, customerID int64) ([]*order.Order, error) {
	path := fmt.Sprintf("/orders/customer/%d", customerID)
	return c.orderList(ctx, path, "customer orders", customerID)
}

// RestaurantOrders fetches the flat order board of one restaurant.
func (c *Client) RestaurantOrders(ctx context.Context, restaurantID int64) ([]*order.Order, error) {
	path := fmt.Sprintf("/orders/restaurant/%d", restaurantID)
	return c.orderList(ctx, path, "restaurant orders", restaurantID)
}

func (c *Client) orderList(ctx context.Context, path, paramName string, id int64) ([]*order.Order, error) {
	var dtos []orderDTO
	if err := c.send(ctx, http.MethodGet, []string{path}, nil, nil, nil, &dtos); err != nil {
		return nil, notFoundAs(err, paramName, id)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomainOrder(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Restaurant fetches restaurant reference data, trying the legacy mount when
// the primary route is absent.
func (c *Client) Restaurant(ctx context.Context, restaurantID int64) (restaurant.Restaurant, error) {
	var dto restaurantDTO
	err := c.send(ctx, http.MethodGet, restaurantCandidates(restaurantID), nil, nil, nil, &dto)
	if err != nil {
		return restaurant.Restaurant{}, notFoundAs(err, "restaurant", restaurantID)
	}
	return toDomainRestaurant(dto)
}

// notFoundAs converts an exhausted route-not-found walk into the domain's
// object-not-found error. Other failures pass through untouched.
func notFoundAs(err error, paramName string, id any) error {
	if errors.Is(err, ErrRouteNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(paramName, id, err)
	}
	return err
}
