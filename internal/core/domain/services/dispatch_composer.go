package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"larica/internal/core/domain/model/order"
	"larica/internal/core/domain/model/restaurant"
	"larica/internal/pkg/errs"
)

var (
	// ErrOrderNotDispatchEligible is returned when a courier notification is
	// requested for an order that is not in PREPARING or READY status.
	ErrOrderNotDispatchEligible = errors.New("order is not in a dispatch-eligible status")

	// ErrRestaurantMismatch is returned when the supplied restaurant does
	// not match the order's restaurant.
	ErrRestaurantMismatch = errors.New("restaurant does not match the order")
)

// DispatchSettings is the operator-side configuration for courier
// notifications: which messaging channel to open and how to build the
// delivery-route link. It is read from persisted operator settings, not
// decided by the composer.
type DispatchSettings struct {
	// Scheme of the courier messaging deep link, e.g. "whatsapp".
	Scheme string

	// Channel is the destination inside the messaging app: a fixed courier
	// contact or a general dispatch channel, as the operator configured.
	Channel string

	// RouteBaseURL is the base of the delivery-route resource; the order id
	// is appended to it.
	RouteBaseURL string

	// SuggestedFee is free-form fee text appended to the message,
	// e.g. "R$ 7.00". Empty omits the fee line.
	SuggestedFee string
}

// Validate checks the settings needed to build a well-formed deep link.
func (s DispatchSettings) Validate() error {
	if s.Scheme == "" {
		return errs.NewValueIsRequiredError("dispatch scheme")
	}
	if s.Channel == "" {
		return errs.NewValueIsRequiredError("dispatch channel")
	}
	if s.RouteBaseURL == "" {
		return errs.NewValueIsRequiredError("dispatch route base URL")
	}
	return nil
}

// Notification is a composed courier message: human-readable text plus a
// messaging deep link embedding that text. The caller decides what to open;
// the composer performs no network I/O.
type Notification struct {
	Text string
	Link string
}

// DispatchComposer builds courier notifications for dispatch-eligible
// orders. It is a pure formatting service over operator settings.
type DispatchComposer struct {
	settings DispatchSettings
}

// NewDispatchComposer creates a composer with validated operator settings.
func NewDispatchComposer(settings DispatchSettings) (DispatchComposer, error) {
	if err := settings.Validate(); err != nil {
		return DispatchComposer{}, err
	}
	return DispatchComposer{settings: settings}, nil
}

// Compose builds the courier notification for the order.
//
// Eligibility: only orders in PREPARING or READY status may be dispatched;
// anything else fails with ErrOrderNotDispatchEligible. The restaurant must
// be the one fulfilling the order.
//
// The text carries the order id, the restaurant name (with address and
// phone when available), a delivery-route link keyed by order id, and the
// configured suggested-fee text. The link is
// <scheme>://<channel>?text=<url-encoded text>.
func (c DispatchComposer) Compose(o *order.Order, r restaurant.Restaurant) (Notification, error) {
	if err := o.Validate(); err != nil {
		return Notification{}, err
	}
	if err := r.Validate(); err != nil {
		return Notification{}, err
	}
	if o.RestaurantID() != r.ID() {
		return Notification{}, ErrRestaurantMismatch
	}
	if !o.Status().IsDispatchEligible() {
		return Notification{}, ErrOrderNotDispatchEligible
	}

	text := c.composeText(o, r)

	query := url.Values{}
	query.Set("text", text)
	link := fmt.Sprintf("%s://%s?%s", c.settings.Scheme, c.settings.Channel, query.Encode())

	return Notification{Text: text, Link: link}, nil
}

func (c DispatchComposer) composeText(o *order.Order, r restaurant.Restaurant) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New delivery: order #%d from %s", o.ID(), r.Name())
	if r.Address() != "" {
		fmt.Fprintf(&b, " (%s)", r.Address())
	}
	fmt.Fprintf(&b, "\nRoute: %s/%d", strings.TrimRight(c.settings.RouteBaseURL, "/"), o.ID())
	if c.settings.SuggestedFee != "" {
		fmt.Fprintf(&b, "\nSuggested fee: %s", c.settings.SuggestedFee)
	}
	if r.Phone() != "" {
		fmt.Fprintf(&b, "\nRestaurant contact: %s", r.Phone())
	}

	return b.String()
}
