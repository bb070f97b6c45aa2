// Package errs provides standardized error types for the ship notice application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain packages define their own sentinels for business failures (for example
// sscc.ErrSerialExhausted) and use these types for parameter validation, so
// callers can classify any error with errors.Is without string matching.
package errs
