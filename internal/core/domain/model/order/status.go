package order

import (
	"fmt"
	"strings"

	"larica/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed set of legal transitions:
//
//	AWAITING ──accept──> PREPARING ──────deliver──> DELIVERED
//	    │                    │                          ^
//	    │                  ready                        │
//	  reject                 v                          │
//	    v                  READY ────────deliver────────┘
//	CANCELLED
//
// CANCELLED and DELIVERED are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Awaiting is the initial status assigned by the backend on submission.
	// The restaurant operator has not accepted or rejected the order yet.
	Awaiting

	// Preparing indicates the operator accepted the order and the kitchen
	// is working on it.
	Preparing

	// Ready indicates the order is prepared and waiting for pickup.
	// This intermediate state is optional: Preparing may go straight
	// to Delivered.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the operator rejected the order. Terminal.
	Cancelled
)

// getStatusStrings returns the wire spellings of all Status values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Awaiting:  "AWAITING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Awaiting:  "AWAITING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// statusAliases maps legacy wire spellings, seen across older backend
// deployments, onto the canonical set.
func statusAliases() map[string]Status {
	return map[string]Status{
		"IN_PREPARATION": Preparing,
		"COMPLETED":      Delivered,
		"REJECTED":       Cancelled,
	}
}

// legalTransitions returns the closed edge set of the state machine.
// Terminal states have no outgoing edges and are absent from the map.
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Awaiting:  {Preparing, Cancelled},
		Preparing: {Ready, Delivered},
		Ready:     {Delivered},
	}
}

// ParseStatus converts a wire spelling into a Status. Canonical spellings
// are matched case-insensitively; a few legacy aliases used by older
// deployments are accepted as well. Anything else is an error.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))

	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	if status, ok := statusAliases()[normalized]; ok {
		return status, nil
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical wire spelling of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsDispatchEligible reports whether a courier notification may be composed
// for an order in this status.
func (s Status) IsDispatchEligible() bool {
	return s == Preparing || s == Ready
}

// CanTransitionTo reports whether the edge (s -> target) is in the legal
// transition table. It is a pure function over the closed edge set: any
// pair not explicitly listed is illegal, regardless of caller intent.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range legalTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested transition and returns the target
// status. The current status is returned unchanged alongside an error when
// the edge is illegal.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if err := target.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(target) {
		return s, errs.NewValueIsInvalidErrorWithCause("status transition",
			fmt.Errorf("%s -> %s is not a legal transition", s, target))
	}
	return target, nil
}
