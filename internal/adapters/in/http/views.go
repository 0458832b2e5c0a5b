package http

import (
	"time"

	"larica/internal/core/application/usecases/queries"
	"larica/internal/core/domain/model/cart"
	"larica/internal/core/domain/model/order"
	"larica/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// Error is the JSON error payload returned by every handler.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product is the catalog view of one product.
type Product struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurantId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// CartItem is one line of the cart view.
type CartItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cart is the view of a customer's in-progress cart.
type Cart struct {
	CustomerID   int64           `json:"customerId"`
	RestaurantID int64           `json:"restaurantId"`
	Items        []CartItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// OrderItem is one line of an order view.
type OrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Order is the view of a submitted order.
type Order struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customerId"`
	RestaurantID int64           `json:"restaurantId"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// OrderSubmitted is the response to a successful order submission.
type OrderSubmitted struct {
	OrderID int64 `json:"orderId"`
}

// Dispatch is the composed courier notification view.
type Dispatch struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

func toProductView(p product.Product) Product {
	return Product{
		ID:           p.ID(),
		RestaurantID: p.RestaurantID(),
		Name:         p.Name(),
		UnitPrice:    p.UnitPrice(),
	}
}

func toCartView(c *cart.Cart) Cart {
	lines := c.Lines()
	items := make([]CartItem, 0, len(lines))
	for _, line := range lines {
		p := line.Product()
		items = append(items, CartItem{
			ProductID: p.ID(),
			Name:      p.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: p.UnitPrice(),
			Subtotal:  p.UnitPrice().Mul(decimal.NewFromInt(int64(line.Quantity()))),
		})
	}

	return Cart{
		CustomerID:   c.CustomerID(),
		RestaurantID: c.RestaurantID(),
		Items:        items,
		Total:        c.Total(),
	}
}

func toOrderView(o *order.Order) Order {
	domainItems := o.Items()
	items := make([]OrderItem, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItem{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return Order{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.RestaurantID(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		Items:        items,
		Total:        o.Total(),
	}
}

func toHistoryView(r queries.GetOrderHistoryQueryResponse) Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return Order{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		RestaurantID: r.RestaurantID,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt,
		Items:        items,
		Total:        r.Total,
	}
}
