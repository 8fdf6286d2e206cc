package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow business rule violations. Every command either
// fully succeeds or fails with one of these kinds plus a human-readable
// reason; callers map them onto user-facing validation messages.
var (
	// ErrMissingResource indicates a required driver/vehicle is absent.
	ErrMissingResource = errors.New("required transport resource is missing")

	// ErrAlreadyClaimed indicates the source was already consumed by another
	// delivery order.
	ErrAlreadyClaimed = errors.New("source is already claimed")

	// ErrGroupingConflict indicates an FTL/LTL mixing violation.
	ErrGroupingConflict = errors.New("grouping conflict")

	// ErrInvalidAmount indicates a non-positive payment amount.
	ErrInvalidAmount = errors.New("amount is invalid")

	// ErrOverpayment indicates a payment would push paid amount over total.
	ErrOverpayment = errors.New("payment exceeds invoice total")

	// ErrInvoiceNotPayable indicates the invoice no longer accepts payments.
	ErrInvoiceNotPayable = errors.New("invoice is not payable")

	// ErrEditLocked indicates the entity is frozen for the attempted edit.
	ErrEditLocked = errors.New("edit is locked")

	// ErrCancellationNotAllowed indicates the entity cannot be cancelled in
	// its current state.
	ErrCancellationNotAllowed = errors.New("cancellation is not allowed")

	// ErrInvalidTransition indicates a status transition that the lifecycle
	// state machine does not permit.
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

// BusinessRuleError is a recoverable workflow validation failure. It pairs a
// sentinel kind with a human-readable reason so that errors.Is can classify
// the failure while the message stays specific.
type BusinessRuleError struct {
	Kind   error
	Reason string
	Cause  error
}

// NewBusinessRuleError creates a BusinessRuleError of the given kind.
// The kind must be one of the sentinel errors declared in this package.
func NewBusinessRuleError(kind error, reason string) *BusinessRuleError {
	return &BusinessRuleError{Kind: kind, Reason: reason}
}

// NewBusinessRuleErrorWithCause creates a BusinessRuleError wrapping an
// underlying cause, typically a storage-level error such as a unique
// constraint violation.
func NewBusinessRuleErrorWithCause(kind error, reason string, cause error) *BusinessRuleError {
	return &BusinessRuleError{Kind: kind, Reason: reason, Cause: cause}
}

func (e *BusinessRuleError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", e.Kind, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", e.Kind, e.Reason))
}

func (e *BusinessRuleError) Unwrap() error {
	return e.Kind
}
