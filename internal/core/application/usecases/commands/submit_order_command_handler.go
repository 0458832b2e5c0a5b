package commands

import (
	"context"

	"larica/internal/core/ports"
)

// SubmitOrderCommandHandler pushes a validated cart snapshot to the backend
// and returns the backend-assigned order id.
//
// Failure semantics: validation failures never reach the network, and any
// gateway failure is surfaced verbatim — the handler performs no retries of
// its own (the single route-not-found fallback lives in the gateway) and
// never mutates the cart, so the shopper can adjust and retry.
type SubmitOrderCommandHandler struct {
	gateway ports.OrderSubmitter
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(gateway ports.OrderSubmitter) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{gateway: gateway}
}

// Handle submits the order and returns its backend-assigned id.
// Clearing the cart after a confirmed success is the caller's job.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.gateway.SubmitOrder(ctx, cmd.Submission())
}
