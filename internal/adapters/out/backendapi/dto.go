// Package backendapi implements the ordering gateway over the restaurant
// platform's REST API. The platform owns all durable state; this adapter
// translates between wire DTOs and domain objects and applies the ordered
// candidate-endpoint fallback for routes that moved between deployments.
package backendapi

import (
	"strings"
	"time"

	"larica/internal/core/domain/model/order"
	"larica/internal/core/domain/model/product"
	"larica/internal/core/domain/model/restaurant"
	"larica/internal/core/ports"

	"github.com/shopspring/decimal"
)

// placeholderProductName stands in for items whose product reference is
// missing from a historical record.
const placeholderProductName = "(unavailable)"

// price decodes backend price fields, which arrive as JSON numbers on some
// deployments and as strings on others. Garbage or missing values decode to
// zero so one malformed field never hides a whole record.
type price struct {
	decimal.Decimal
}

func (p *price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		p.Decimal = decimal.Zero
		return nil
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))

	parsed, err := decimal.NewFromString(raw)
	if err != nil || parsed.IsNegative() {
		p.Decimal = decimal.Zero
		return nil
	}
	p.Decimal = parsed
	return nil
}

type productDTO struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Name         string `json:"name"`
	Price        price  `json:"price"`
}

type orderItemDTO struct {
	ID       int64       `json:"id"`
	Quantity int         `json:"quantity"`
	Product  *productDTO `json:"product"`
}

type orderDTO struct {
	ID           int64          `json:"id"`
	CustomerID   int64          `json:"customerId"`
	RestaurantID int64          `json:"restaurantId"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	Items        []orderItemDTO `json:"items"`
}

type restaurantDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type submitOrderItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type submitOrderRequestDTO struct {
	CustomerID   int64                `json:"customerId"`
	RestaurantID int64                `json:"restaurantId"`
	Items        []submitOrderItemDTO `json:"items"`
}

type submitOrderResponseDTO struct {
	ID int64 `json:"id"`
}

func fromSubmission(submission ports.OrderSubmission) submitOrderRequestDTO {
	items := make([]submitOrderItemDTO, 0, len(submission.Items))
	for _, item := range submission.Items {
		items = append(items, submitOrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return submitOrderRequestDTO{
		CustomerID:   submission.CustomerID,
		RestaurantID: submission.RestaurantID,
		Items:        items,
	}
}

func toDomainProduct(dto productDTO) (product.Product, error) {
	return product.NewProduct(dto.ID, dto.RestaurantID, dto.Name, dto.Price.Decimal)
}

// toDomainItem degrades instead of failing: missing product references get a
// placeholder name and a zero price, negative quantities count as zero.
func toDomainItem(dto orderItemDTO) (order.Item, error) {
	name := placeholderProductName
	unitPrice := decimal.Zero
	if dto.Product != nil && dto.Product.Name != "" {
		name = dto.Product.Name
		unitPrice = dto.Product.Price.Decimal
	}

	quantity := dto.Quantity
	if quantity < 0 {
		quantity = 0
	}

	return order.NewItem(dto.ID, name, quantity, unitPrice)
}

func toDomainOrder(dto orderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.NewOrder(dto.ID, dto.CustomerID, dto.RestaurantID, items, status, dto.CreatedAt)
}

func toDomainRestaurant(dto restaurantDTO) (restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(dto.ID, dto.Name, dto.Address, dto.Phone)
}
