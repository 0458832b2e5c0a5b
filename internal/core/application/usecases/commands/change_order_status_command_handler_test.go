package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"larica/internal/core/application/usecases/commands"
	"larica/internal/core/domain/model/order"
	"larica/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderProvider struct{ mock.Mock }

func (m *MockOrderProvider) Order(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderStatusUpdater struct{ mock.Mock }

func (m *MockOrderStatusUpdater) UpdateOrderStatus(
	ctx context.Context,
	restaurantID, orderID int64,
	target order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, orderID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(0, "Burger", 2, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(101, 1, 5, []order.Item{item}, status, time.Now())
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Accept(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(5, 101, order.Preparing)
	require.NoError(t, err)

	provider := new(MockOrderProvider)
	updater := new(MockOrderStatusUpdater)
	mock.InOrder(
		provider.On("Order", ctx, int64(101)).Return(orderInStatus(t, order.Awaiting), nil).Once(),
		updater.On("UpdateOrderStatus", ctx, int64(5), int64(101), order.Preparing).
			Return(orderInStatus(t, order.Preparing), nil).Once(),
	)

	h := commands.NewChangeOrderStatusCommandHandler(provider, updater)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	provider.AssertExpectations(t)
	updater.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := context.Background()
	// AWAITING -> DELIVERED is not in the transition table.
	cmd, err := commands.NewChangeOrderStatusCommand(5, 101, order.Delivered)
	require.NoError(t, err)

	provider := new(MockOrderProvider)
	provider.On("Order", ctx, int64(101)).Return(orderInStatus(t, order.Awaiting), nil).Once()
	updater := new(MockOrderStatusUpdater)

	h := commands.NewChangeOrderStatusCommandHandler(provider, updater)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	// The rejected transition never reaches the backend.
	updater.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalStatus(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(5, 101, order.Preparing)
	require.NoError(t, err)

	provider := new(MockOrderProvider)
	provider.On("Order", ctx, int64(101)).Return(orderInStatus(t, order.Cancelled), nil).Once()
	updater := new(MockOrderStatusUpdater)

	h := commands.NewChangeOrderStatusCommandHandler(provider, updater)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	updater.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_RestaurantMismatch(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(6, 101, order.Preparing)
	require.NoError(t, err)

	provider := new(MockOrderProvider)
	provider.On("Order", ctx, int64(101)).Return(orderInStatus(t, order.Awaiting), nil).Once()
	updater := new(MockOrderStatusUpdater)

	h := commands.NewChangeOrderStatusCommandHandler(provider, updater)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	updater.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_FetchError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(5, 101, order.Preparing)
	require.NoError(t, err)

	fetchErr := errors.New("backend unavailable")
	provider := new(MockOrderProvider)
	provider.On("Order", ctx, int64(101)).Return(nil, fetchErr).Once()
	updater := new(MockOrderStatusUpdater)

	h := commands.NewChangeOrderStatusCommandHandler(provider, updater)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, fetchErr)
	updater.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	provider := new(MockOrderProvider)
	updater := new(MockOrderStatusUpdater)

	h := commands.NewChangeOrderStatusCommandHandler(provider, updater)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	provider.AssertNotCalled(t, "Order", mock.Anything, mock.Anything)
}
