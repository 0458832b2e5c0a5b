// Package kernel contains shared value objects used across the domain
// model. It currently provides UUID, the client-generated identifier used
// as an idempotency key for order submission: the backend assigns numeric
// ids to every persisted entity, so the only identifiers this client mints
// itself are submission keys.
package kernel
