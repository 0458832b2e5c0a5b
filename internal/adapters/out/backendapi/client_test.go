package backendapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"larica/internal/adapters/out/backendapi"
	"larica/internal/core/domain/model/kernel"
	"larica/internal/core/domain/model/order"
	"larica/internal/core/ports"
	"larica/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) *backendapi.Client {
	t.Helper()
	client, err := backendapi.NewClient(baseURL, 0)
	require.NoError(t, err)
	return client
}

func testSubmission(t *testing.T) ports.OrderSubmission {
	t.Helper()
	return ports.OrderSubmission{
		CustomerID:   1,
		RestaurantID: 5,
		Items: []ports.SubmissionItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1},
		},
		IdempotencyKey: kernel.NewUUID(),
	}
}

func TestClient_SubmitOrder_PrimaryRoute(t *testing.T) {
	var gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]int64{"id": 101})
	}))
	defer srv.Close()

	submission := testSubmission(t)
	id, err := newClient(t, srv.URL).SubmitOrder(context.Background(), submission)

	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
	assert.Equal(t, submission.IdempotencyKey.String(), gotKey)
	_, err = uuid.Parse(gotKey)
	assert.NoError(t, err)

	assert.Equal(t, float64(1), gotBody["customerId"])
	assert.Equal(t, float64(5), gotBody["restaurantId"])
	items := gotBody["items"].([]any)
	require.Len(t, items, 2)
	// Prices are never sent; the backend owns pricing.
	first := items[0].(map[string]any)
	assert.Equal(t, float64(10), first["productId"])
	assert.Equal(t, float64(2), first["quantity"])
	assert.NotContains(t, first, "price")
	assert.NotContains(t, first, "unitPrice")
}

func TestClient_SubmitOrder_FallsBackOnRouteNotFound(t *testing.T) {
	var primaryHits, legacyHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			primaryHits++
			http.NotFound(w, r)
		case "/orders-legacy":
			legacyHits++
			_ = json.NewEncoder(w).Encode(map[string]int64{"id": 101})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	id, err := newClient(t, srv.URL).SubmitOrder(context.Background(), testSubmission(t))

	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
	assert.Equal(t, 1, primaryHits)
	assert.Equal(t, 1, legacyHits)
}

func TestClient_SubmitOrder_SecondRouteNotFoundIsFinal(t *testing.T) {
	var primaryHits, legacyHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			primaryHits++
		case "/orders-legacy":
			legacyHits++
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).SubmitOrder(context.Background(), testSubmission(t))

	require.ErrorIs(t, err, backendapi.ErrRouteNotFound)
	assert.Equal(t, 1, primaryHits, "each candidate is tried exactly once")
	assert.Equal(t, 1, legacyHits, "each candidate is tried exactly once")
}

func TestClient_SubmitOrder_NonRouteErrorSurfacesImmediately(t *testing.T) {
	var legacyHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders-legacy" {
			legacyHits++
		}
		http.Error(w, "kitchen on fire", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).SubmitOrder(context.Background(), testSubmission(t))

	var statusErr *backendapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Body, "kitchen on fire")
	assert.Equal(t, 0, legacyHits, "only route-not-found advances the candidate list")
}

func TestClient_SubmitOrder_MissingIdempotencyKey(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	submission := testSubmission(t)
	submission.IdempotencyKey = kernel.UUID{}
	_, err := newClient(t, srv.URL).SubmitOrder(context.Background(), submission)

	require.Error(t, err)
	assert.Equal(t, 0, hits)
}

func TestClient_Catalog_CoercesStringAndNumberPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/catalog/5", r.URL.Path)
		_, _ = fmt.Fprint(w, `[
			{"id":10,"restaurantId":5,"name":"Burger","price":"10.50"},
			{"id":11,"restaurantId":5,"name":"Fries","price":5},
			{"id":12,"restaurantId":5,"name":"Soda","price":"oops"},
			{"id":13,"restaurantId":5,"name":"Water","price":null}
		]`)
	}))
	defer srv.Close()

	products, err := newClient(t, srv.URL).Catalog(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.True(t, decimal.RequireFromString("10.50").Equal(products[0].UnitPrice()))
	assert.True(t, decimal.RequireFromString("5").Equal(products[1].UnitPrice()))
	assert.True(t, products[2].UnitPrice().IsZero(), "garbage price degrades to zero")
	assert.True(t, products[3].UnitPrice().IsZero(), "missing price degrades to zero")
}

func TestClient_UpdateOrderStatus_SendsTargetAsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/restaurants/5/orders/101/status", r.URL.Path)
		require.Equal(t, "PREPARING", r.URL.Query().Get("status"))
		_, _ = fmt.Fprint(w, `{
			"id":101,"customerId":1,"restaurantId":5,
			"status":"IN_PREPARATION","createdAt":"2024-06-01T12:00:00Z",
			"items":[{"id":1,"quantity":2,"product":{"id":10,"name":"Burger","price":"10.00"}}]
		}`)
	}))
	defer srv.Close()

	updated, err := newClient(t, srv.URL).UpdateOrderStatus(context.Background(), 5, 101, order.Preparing)

	require.NoError(t, err)
	assert.Equal(t, int64(101), updated.ID())
	// Legacy alias in the response maps onto the canonical status.
	assert.Equal(t, order.Preparing, updated.Status())
}

func TestClient_UpdateOrderStatus_InvalidTargetNeverSent(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).UpdateOrderStatus(context.Background(), 5, 101, order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 0, hits)
}

func TestClient_Order_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Order(context.Background(), 404)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClient_CustomerOrders_DegradedItemKeepsRecordVisible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/customer/1", r.URL.Path)
		_, _ = fmt.Fprint(w, `[{
			"id":101,"customerId":1,"restaurantId":5,
			"status":"DELIVERED","createdAt":"2024-06-01T12:00:00Z",
			"items":[
				{"id":1,"quantity":2,"product":{"id":10,"name":"Burger","price":"10.00"}},
				{"id":2,"quantity":3,"product":null}
			]
		}]`)
	}))
	defer srv.Close()

	orders, err := newClient(t, srv.URL).CustomerOrders(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	items := orders[0].Items()
	require.Len(t, items, 2)
	assert.Equal(t, "(unavailable)", items[1].ProductName())
	assert.True(t, items[1].UnitPrice().IsZero())
	assert.True(t, decimal.RequireFromString("20.00").Equal(orders[0].Total()),
		"degraded line contributes zero to the total")
}

func TestClient_Restaurant_LegacyFallback(t *testing.T) {
	var primaryHits, legacyHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/restaurants/5":
			primaryHits++
			http.NotFound(w, r)
		case "/legacy/restaurants/5":
			legacyHits++
			_, _ = fmt.Fprint(w, `{"id":5,"name":"Pizza Palace","address":"12 Main St","phone":"+5511999990000"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	r, err := newClient(t, srv.URL).Restaurant(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", r.Name())
	assert.Equal(t, 1, primaryHits)
	assert.Equal(t, 1, legacyHits)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := backendapi.NewClient("", 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
