package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHistoryProvider struct{ mock.Mock }

func (m *MockHistoryProvider) CustomerOrders(ctx context.Context, customerID int64) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockHistoryProvider) RestaurantOrders(ctx context.Context, restaurantID int64) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func historyOrder(t *testing.T, id int64, createdAt time.Time, items ...order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, 1, 5, items, order.Delivered, createdAt)
	require.NoError(t, err)
	return o
}

func historyItem(t *testing.T, name string, qty int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(0, name, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestGetOrderHistoryQueryHandler_Handle_SortsNewestFirstWithIDTiebreak(t *testing.T) {
	ctx := context.Background()
	tNew := time.Date(2024, 6, 1, 12, 0, 10, 0, time.UTC)
	tOld := time.Date(2024, 6, 1, 12, 0, 9, 0, time.UTC)

	provider := new(MockHistoryProvider)
	provider.On("CustomerOrders", ctx, int64(1)).Return([]*order.Order{
		historyOrder(t, 5, tNew, historyItem(t, "Burger", 1, "10.00")),
		historyOrder(t, 7, tNew, historyItem(t, "Fries", 1, "5.00")),
		historyOrder(t, 9, tOld, historyItem(t, "Soda", 1, "3.00")),
	}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerCustomer, 1)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, int64(7), result[0].ID)
	assert.Equal(t, int64(5), result[1].ID)
	assert.Equal(t, int64(9), result[2].ID)
	provider.AssertExpectations(t)
}

func TestGetOrderHistoryQueryHandler_Handle_RecomputesTotals(t *testing.T) {
	ctx := context.Background()

	provider := new(MockHistoryProvider)
	provider.On("CustomerOrders", ctx, int64(1)).Return([]*order.Order{
		historyOrder(t, 101, time.Now(),
			historyItem(t, "Burger", 2, "10.00"),
			historyItem(t, "Fries", 1, "5.00"),
		),
	}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerCustomer, 1)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, decimal.RequireFromString("25.00").Equal(result[0].Total),
		"expected 25.00, got %s", result[0].Total)
	require.Len(t, result[0].Items, 2)
	assert.True(t, decimal.RequireFromString("20.00").Equal(result[0].Items[0].Subtotal))
}

func TestGetOrderHistoryQueryHandler_Handle_DegradedItemsCountAsZero(t *testing.T) {
	ctx := context.Background()

	// An order whose second line lost its product reference: placeholder
	// name, zero price. It must stay visible and contribute zero.
	provider := new(MockHistoryProvider)
	provider.On("CustomerOrders", ctx, int64(1)).Return([]*order.Order{
		historyOrder(t, 101, time.Now(),
			historyItem(t, "Burger", 2, "10.00"),
			historyItem(t, "(unavailable)", 3, "0"),
		),
	}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerCustomer, 1)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Items, 2)
	assert.Equal(t, "(unavailable)", result[0].Items[1].ProductName)
	assert.True(t, decimal.RequireFromString("20.00").Equal(result[0].Total),
		"expected 20.00, got %s", result[0].Total)
}

func TestGetOrderHistoryQueryHandler_Handle_RestaurantOwnerUsesBoardList(t *testing.T) {
	ctx := context.Background()

	provider := new(MockHistoryProvider)
	provider.On("RestaurantOrders", ctx, int64(5)).Return([]*order.Order{
		historyOrder(t, 101, time.Now(), historyItem(t, "Burger", 1, "10.00")),
	}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerRestaurant, 5)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 1)
	provider.AssertNotCalled(t, "CustomerOrders", mock.Anything, mock.Anything)
	provider.AssertExpectations(t)
}

func TestGetOrderHistoryQueryHandler_Handle_EmptyHistory(t *testing.T) {
	ctx := context.Background()

	provider := new(MockHistoryProvider)
	provider.On("CustomerOrders", ctx, int64(1)).Return([]*order.Order{}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerCustomer, 1)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetOrderHistoryQueryHandler_Handle_GatewayError(t *testing.T) {
	ctx := context.Background()

	gatewayErr := errors.New("backend unavailable")
	provider := new(MockHistoryProvider)
	provider.On("CustomerOrders", ctx, int64(1)).Return(nil, gatewayErr).Once()

	query, err := queries.NewGetOrderHistoryQuery(queries.OwnerCustomer, 1)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.ErrorIs(t, err, gatewayErr)
	assert.Nil(t, result)
}

func TestGetOrderHistoryQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := context.Background()

	provider := new(MockHistoryProvider)
	h := queries.NewGetOrderHistoryQueryHandler(provider)
	_, err := h.Handle(ctx, queries.GetOrderHistoryQuery{})

	require.Error(t, err)
	provider.AssertNotCalled(t, "CustomerOrders", mock.Anything, mock.Anything)
	provider.AssertNotCalled(t, "RestaurantOrders", mock.Anything, mock.Anything)
}
