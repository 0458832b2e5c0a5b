// Package restaurant models the read-only restaurant reference data used
// for display and for composing courier dispatch messages. Restaurants are
// owned by the backend; the client only fetches snapshots.
package restaurant

import (
	"fmt"

	"larica/internal/pkg/errs"
)

// Restaurant is an immutable snapshot of a restaurant's reference data.
type Restaurant struct {
	id      int64
	name    string
	address string
	phone   string
}

// NewRestaurant creates a validated Restaurant snapshot. Address and phone
// are optional: some deployments do not expose them, and dispatch messages
// simply omit the missing parts.
func NewRestaurant(id int64, name, address, phone string) (Restaurant, error) {
	if id <= 0 {
		return Restaurant{}, errs.NewValueIsInvalidErrorWithCause("restaurant id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if name == "" {
		return Restaurant{}, errs.NewValueIsRequiredError("restaurant name")
	}

	return Restaurant{id: id, name: name, address: address, phone: phone}, nil
}

// ID returns the backend-assigned restaurant identifier.
func (r Restaurant) ID() int64 {
	return r.id
}

// Name returns the restaurant display name.
func (r Restaurant) Name() string {
	return r.name
}

// Address returns the street address, empty when not exposed.
func (r Restaurant) Address() string {
	return r.address
}

// Phone returns the contact phone, empty when not exposed.
func (r Restaurant) Phone() string {
	return r.phone
}

// Validate reports whether the snapshot was created through NewRestaurant.
func (r Restaurant) Validate() error {
	if r.id <= 0 {
		return errs.NewValueIsRequiredError("Restaurant must be created via NewRestaurant constructor")
	}
	return nil
}
