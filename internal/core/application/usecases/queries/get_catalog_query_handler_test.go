package queries_test

import (
	"context"
	"errors"
	"testing"

	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogProvider struct{ mock.Mock }

func (m *MockCatalogProvider) Catalog(ctx context.Context, restaurantID int64) ([]product.Product, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func TestGetCatalogQueryHandler_Handle_ReturnsProductsInBackendOrder(t *testing.T) {
	ctx := context.Background()

	burger, err := product.NewProduct(10, 5, "Burger", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	fries, err := product.NewProduct(11, 5, "Fries", decimal.RequireFromString("5.00"))
	require.NoError(t, err)

	provider := new(MockCatalogProvider)
	provider.On("Catalog", ctx, int64(5)).Return([]product.Product{burger, fries}, nil).Once()

	query, err := queries.NewGetCatalogQuery(5)
	require.NoError(t, err)

	h := queries.NewGetCatalogQueryHandler(provider)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Burger", result[0].Name())
	assert.Equal(t, "Fries", result[1].Name())
	provider.AssertExpectations(t)
}

func TestGetCatalogQueryHandler_Handle_GatewayError(t *testing.T) {
	ctx := context.Background()

	gatewayErr := errors.New("backend unavailable")
	provider := new(MockCatalogProvider)
	provider.On("Catalog", ctx, int64(5)).Return(nil, gatewayErr).Once()

	query, err := queries.NewGetCatalogQuery(5)
	require.NoError(t, err)

	h := queries.NewGetCatalogQueryHandler(provider)
	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, gatewayErr)
}

func TestGetCatalogQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := context.Background()

	provider := new(MockCatalogProvider)
	h := queries.NewGetCatalogQueryHandler(provider)
	_, err := h.Handle(ctx, queries.GetCatalogQuery{})

	require.Error(t, err)
	provider.AssertNotCalled(t, "Catalog", mock.Anything, mock.Anything)
}
