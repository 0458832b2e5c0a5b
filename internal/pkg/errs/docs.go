// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach enables error classification with errors.Is
// across package boundaries: domain validation failures unwrap to
// ErrValueIsInvalid or ErrValueIsRequired, and lookups that miss unwrap to
// ErrObjectNotFound, regardless of which layer produced them.
package errs
