// Package errs provides standardized error types for the restaurant order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure scenarios of the order
// lifecycle:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or outside its domain
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed range
//   - ObjectNotFoundError: an order (or other object) cannot be found
//   - InvalidTransitionError: a status change is not permitted from the current state
//   - ConcurrencyConflictError: a mutation was based on a stale version
//   - TimeoutError: the serialized write slot could not be acquired in time
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers branch on the sentinels to decide whether to fix input, refetch and
// retry, or simply surface the failure; the structs carry the detail needed
// for logs and API responses.
package errs
