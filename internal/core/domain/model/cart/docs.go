// Package cart implements the shopper's in-progress selection for a single
// restaurant. The cart is the only aggregate this client owns: it is bound
// to one customer session at construction, accumulates product/quantity
// lines, recomputes its total on demand, and is discarded after a confirmed
// successful submission or an explicit reset.
//
// Invariant: all lines reference products of the same restaurant. Adding a
// product from another restaurant to a non-empty cart is rejected with
// ErrMixedRestaurantCart rather than silently replacing or mixing lines.
package cart
