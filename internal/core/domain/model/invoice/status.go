package invoice

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Status represents the billing state of an invoice. Unlike the dispatch
// lifecycles, invoice status is not a transition machine: it is derived from
// ledger state (paid amount, total, due date, cancellation) and recomputed
// after every mutation. Paid and Cancelled are the only terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending: no payments yet and the due date has not passed.
	Pending

	// Partial: some, but not all, of the total has been paid.
	Partial

	// Paid: the total is fully covered. Terminal.
	Paid

	// Overdue: no full coverage and the due date has passed. Not sticky;
	// derived fresh on every evaluation.
	Overdue

	// Cancelled: explicitly withdrawn with a reason. Terminal and sticky;
	// short-circuits all other derivation rules.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Partial:   "Partial",
		Paid:      "Paid",
		Overdue:   "Overdue",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts an external representation to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid invoice status", s))
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the invoice accepts no further payments or
// amount edits.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// DeriveStatus is the pure derivation rule applied after every ledger
// mutation. Deriving twice from the same inputs always yields the same
// result; it has no side effects and needs no scheduler to stay correct.
func DeriveStatus(cancelled bool, paidAmount, totalAmount kernel.Money, dueDate, now time.Time) Status {
	switch {
	case cancelled:
		return Cancelled
	case paidAmount.GreaterThanOrEqual(totalAmount):
		return Paid
	case paidAmount.IsPositive():
		return Partial
	case dueDate.Before(now):
		return Overdue
	default:
		return Pending
	}
}
