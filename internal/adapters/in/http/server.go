// Package http is the inbound HTTP facade: echo handlers over the command
// and query handlers, plus the in-memory cart store.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"larica/internal/core/application/usecases/commands"
	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/model/cart"
	"larica/internal/core/domain/model/order"
	"larica/internal/core/domain/model/product"
	"larica/internal/core/domain/services"
	"larica/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP requests to application use cases.
type Server struct {
	carts *CartStore

	// Command handlers
	submitOrderHandler  commands.SubmitOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getCatalogHandler      queries.GetCatalogQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getTrackedOrderHandler queries.GetTrackedOrderQueryHandler
	getRestaurantHandler   queries.GetRestaurantQueryHandler

	dispatchComposer services.DispatchComposer
}

// NewServer creates the HTTP facade with the required handlers.
func NewServer(
	carts *CartStore,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getTrackedOrderHandler queries.GetTrackedOrderQueryHandler,
	getRestaurantHandler queries.GetRestaurantQueryHandler,
	dispatchComposer services.DispatchComposer,
) *Server {
	return &Server{
		carts:                  carts,
		submitOrderHandler:     submitOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		getCatalogHandler:      getCatalogHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		getTrackedOrderHandler: getTrackedOrderHandler,
		getRestaurantHandler:   getRestaurantHandler,
		dispatchComposer:       dispatchComposer,
	}
}

// RegisterRoutes mounts all handlers on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/restaurants/:restaurantId/catalog", s.GetCatalog)

	api.POST("/cart/items", s.AddCartItem)
	api.DELETE("/cart/:customerId/items/:productId", s.RemoveCartItem)
	api.PUT("/cart/:customerId/items/:productId", s.SetCartItemQuantity)
	api.GET("/cart/:customerId", s.GetCart)

	api.POST("/orders", s.SubmitOrder)
	api.PATCH("/restaurants/:restaurantId/orders/:orderId/status", s.ChangeOrderStatus)
	api.GET("/orders/customer/:customerId", s.GetCustomerOrders)
	api.GET("/orders/restaurant/:restaurantId", s.GetRestaurantOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/restaurants/:restaurantId/orders/:orderId/dispatch", s.GetDispatch)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCatalog handles GET /api/v1/restaurants/:restaurantId/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	restaurantID, err := parseIDParam(ctx, "restaurantId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetCatalogQuery(restaurantID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	products, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Product, 0, len(products))
	for _, p := range products {
		response = append(response, toProductView(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items. It resolves the product in
// the restaurant's catalog and adds one unit to the customer's cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req struct {
		CustomerID   int64 `json:"customerId"`
		RestaurantID int64 `json:"restaurantId"`
		ProductID    int64 `json:"productId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewGetCatalogQuery(req.RestaurantID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	products, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var found *product.Product
	for i := range products {
		if products[i].ID() == req.ProductID {
			found = &products[i]
			break
		}
	}
	if found == nil {
		return s.writeError(ctx, errs.NewObjectNotFoundError("product", req.ProductID))
	}

	var view Cart
	err = s.carts.WithCart(req.CustomerID, func(c *cart.Cart) error {
		if addErr := c.AddItem(*found); addErr != nil {
			return addErr
		}
		view = toCartView(c)
		return nil
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// RemoveCartItem handles DELETE /api/v1/cart/:customerId/items/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx, "customerId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	productID, err := parseIDParam(ctx, "productId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var view Cart
	err = s.carts.WithCart(customerID, func(c *cart.Cart) error {
		c.RemoveItem(productID)
		view = toCartView(c)
		return nil
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// SetCartItemQuantity handles PUT /api/v1/cart/:customerId/items/:productId.
func (s *Server) SetCartItemQuantity(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx, "customerId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	productID, err := parseIDParam(ctx, "productId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var view Cart
	err = s.carts.WithCart(customerID, func(c *cart.Cart) error {
		c.SetQuantity(productID, req.Quantity)
		view = toCartView(c)
		return nil
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// GetCart handles GET /api/v1/cart/:customerId.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := parseIDParam(ctx, "customerId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var view Cart
	err = s.carts.WithCart(customerID, func(c *cart.Cart) error {
		view = toCartView(c)
		return nil
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// SubmitOrder handles POST /api/v1/orders. The stored cart is cleared only
// after the backend confirms the submission.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req struct {
		CustomerID int64 `json:"customerId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var orderID int64
	err := s.carts.WithCart(req.CustomerID, func(c *cart.Cart) error {
		cmd, cmdErr := commands.NewSubmitOrderCommand(c)
		if cmdErr != nil {
			return cmdErr
		}

		id, handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return handleErr
		}

		orderID = id
		c.Clear()
		return nil
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, OrderSubmitted{OrderID: orderID})
}

// ChangeOrderStatus handles
// PATCH /api/v1/restaurants/:restaurantId/orders/:orderId/status?status=X.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	restaurantID, err := parseIDParam(ctx, "restaurantId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	target, err := order.ParseStatus(ctx.QueryParam("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(restaurantID, orderID, target)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderView(updated))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetTrackedOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.getTrackedOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderView(o))
}

// GetCustomerOrders handles GET /api/v1/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	return s.orderHistory(ctx, queries.OwnerCustomer, "customerId")
}

// GetRestaurantOrders handles GET /api/v1/orders/restaurant/:restaurantId.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	return s.orderHistory(ctx, queries.OwnerRestaurant, "restaurantId")
}

func (s *Server) orderHistory(ctx echo.Context, kind queries.OwnerKind, paramName string) error {
	ownerID, err := parseIDParam(ctx, paramName)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(kind, ownerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Order, 0, len(history))
	for _, r := range history {
		response = append(response, toHistoryView(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDispatch handles
// GET /api/v1/restaurants/:restaurantId/orders/:orderId/dispatch.
func (s *Server) GetDispatch(ctx echo.Context) error {
	restaurantID, err := parseIDParam(ctx, "restaurantId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderQuery, err := queries.NewGetTrackedOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	o, err := s.getTrackedOrderHandler.Handle(ctx.Request().Context(), orderQuery)
	if err != nil {
		return s.writeError(ctx, err)
	}

	restaurantQuery, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	r, err := s.getRestaurantHandler.Handle(ctx.Request().Context(), restaurantQuery)
	if err != nil {
		return s.writeError(ctx, err)
	}

	notification, err := s.dispatchComposer.Compose(o, r)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Dispatch{Text: notification.Text, Link: notification.Link})
}

func parseIDParam(ctx echo.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%q is not a positive identifier", raw))
	}
	return id, nil
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, cart.ErrMixedRestaurantCart),
		errors.Is(err, services.ErrOrderNotDispatchEligible),
		errors.Is(err, services.ErrRestaurantMismatch):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
