package http

import (
	"sync"

	"larica/internal/core/domain/model/cart"
)

// CartStore keeps the in-progress carts, the only state this service owns.
// Carts are keyed by the owning customer id; all access runs under the store
// mutex because echo serves requests concurrently.
type CartStore struct {
	mu    sync.Mutex
	carts map[int64]*cart.Cart
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int64]*cart.Cart)}
}

// WithCart runs fn against the customer's cart while holding the store lock,
// creating an empty cart on first use. The cart pointer must not escape fn.
func (s *CartStore) WithCart(customerID int64, fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[customerID]
	if !ok {
		created, err := cart.NewCart(customerID)
		if err != nil {
			return err
		}
		s.carts[customerID] = created
		c = created
	}

	return fn(c)
}
