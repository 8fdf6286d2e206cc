package joborder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a job order. It implements a
// forward-only state machine:
//
//	Created -> Assigned -> PickedUp -> InTransit -> Delivered -> Completed
//
// Any state before Completed may transition to Cancelled. Completed and
// Cancelled are terminal; attempting a transition out of them fails with
// an ErrInvalidTransition kind, never silently.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status when a job order is registered.
	Created

	// Assigned indicates a driver/vehicle pair has been bound.
	Assigned

	// PickedUp indicates the goods have been collected from the shipper.
	PickedUp

	// InTransit indicates the shipment is on its way.
	InTransit

	// Delivered indicates the goods reached the consignee.
	Delivered

	// Completed indicates all follow-up work is done. Terminal.
	Completed

	// Cancelled indicates the job order was withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// next returns the single forward successor for each non-terminal status.
func next(s Status) (Status, bool) {
	successors := map[Status]Status{
		Created:   Assigned,
		Assigned:  PickedUp,
		PickedUp:  InTransit,
		InTransit: Delivered,
		Delivered: Completed,
	}
	n, ok := successors[s]
	return n, ok
}

// ParseStatus converts an external representation to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < Created || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates and performs a transition to target. Only the
// immediate forward successor is allowed; Cancelled is reachable from any
// non-terminal state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			fmt.Sprintf("job order is %s and accepts no further transitions", s))
	}

	if target == Cancelled {
		return Cancelled, nil
	}

	if n, ok := next(s); ok && n == target {
		return target, nil
	}

	return Unknown, errs.NewBusinessRuleError(errs.ErrInvalidTransition,
		fmt.Sprintf("job order cannot move from %s to %s", s, target))
}
