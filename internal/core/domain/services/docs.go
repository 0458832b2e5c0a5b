// Package services contains domain services: operations that belong to the
// domain but do not fit a single aggregate. The dispatch composer formats
// courier-facing notifications from an order and its restaurant; it owns no
// state of its own beyond operator-configured settings and performs no I/O.
package services
