// Package order models a submitted purchase and its lifecycle.
//
// An Order is created by the restaurant platform when a cart is submitted;
// the backend assigns its id and initial status. The client never mutates
// an order locally: every status change is requested by sending the target
// state to the backend, and the authoritative result is observed by
// re-fetching. Order items are snapshots of name and price at order time,
// decoupled from the live catalog so historical totals stay stable.
//
// Status implements the fixed order state machine. Transition legality is a
// pure function over a closed edge set and is never parameterized by caller
// intent.
package order
