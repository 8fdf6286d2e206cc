// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of errors:
//
// Value errors cover common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Business rule errors carry the workflow-specific failure kinds surfaced to
// callers as user-facing validation messages: missing transport resources,
// duplicate source claims, FTL/LTL grouping conflicts, ledger violations
// (invalid amount, overpayment, unpayable invoice, edit lock), disallowed
// cancellations, and invalid status transitions.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired, ErrOverpayment)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// All business rule errors are recoverable by the caller; none should crash
// the process.
package errs
