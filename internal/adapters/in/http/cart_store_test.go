package http_test

import (
	"sync"
	"testing"

	adapterhttp "larica/internal/adapters/in/http"
	"larica/internal/core/domain/model/cart"
	"larica/internal/core/domain/model/product"
	"larica/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_CreatesCartOnFirstUse(t *testing.T) {
	store := adapterhttp.NewCartStore()

	err := store.WithCart(1, func(c *cart.Cart) error {
		assert.Equal(t, int64(1), c.CustomerID())
		assert.True(t, c.IsEmpty())
		return nil
	})
	require.NoError(t, err)
}

func TestCartStore_KeepsStatePerCustomer(t *testing.T) {
	store := adapterhttp.NewCartStore()
	burger, err := product.NewProduct(10, 5, "Burger", decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	require.NoError(t, store.WithCart(1, func(c *cart.Cart) error {
		return c.AddItem(burger)
	}))

	require.NoError(t, store.WithCart(1, func(c *cart.Cart) error {
		assert.Len(t, c.Lines(), 1)
		return nil
	}))
	require.NoError(t, store.WithCart(2, func(c *cart.Cart) error {
		assert.True(t, c.IsEmpty(), "carts are isolated per customer")
		return nil
	}))
}

func TestCartStore_RejectsNonPositiveCustomerID(t *testing.T) {
	store := adapterhttp.NewCartStore()

	err := store.WithCart(0, func(c *cart.Cart) error { return nil })
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCartStore_ConcurrentAccess(t *testing.T) {
	store := adapterhttp.NewCartStore()
	burger, err := product.NewProduct(10, 5, "Burger", decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithCart(1, func(c *cart.Cart) error {
				return c.AddItem(burger)
			})
		}()
	}
	wg.Wait()

	require.NoError(t, store.WithCart(1, func(c *cart.Cart) error {
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 50, c.Lines()[0].Quantity())
		return nil
	}))
}
