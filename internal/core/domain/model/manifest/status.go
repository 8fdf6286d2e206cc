package manifest

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a manifest. The machine is linear
// and forward-only:
//
//	Pending -> Loading -> InTransit -> Arrived -> Completed
//
// Cancellation is only possible while the manifest is still on the ground
// (Pending or Loading). Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the manifest is assembled but loading
	// has not started.
	Pending

	// Loading indicates the constituent shipments are being loaded.
	Loading

	// InTransit indicates the trip is underway.
	InTransit

	// Arrived indicates the vehicle reached its destination region.
	Arrived

	// Completed indicates every constituent shipment was handed over.
	// Terminal. "Delivered" is accepted as an alias on parse.
	Completed

	// Cancelled indicates the manifest was withdrawn before departure.
	// Terminal. Blocks any further delivery order creation from it.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Loading:   "Loading",
		InTransit: "InTransit",
		Arrived:   "Arrived",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts an external representation to a Status. "Delivered"
// is accepted as an alias of Completed for compatibility with documents that
// use the older name.
func ParseStatus(s string) (Status, error) {
	if s == "Delivered" {
		return Completed, nil
	}
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid manifest status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
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

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates and performs a forward transition to target.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			fmt.Sprintf("manifest is %s and accepts no further transitions", s))
	}

	if target == Cancelled {
		if s != Pending && s != Loading {
			return Unknown, errs.NewBusinessRuleError(errs.ErrCancellationNotAllowed,
				fmt.Sprintf("manifest can only be cancelled while Pending or Loading, not %s", s))
		}
		return Cancelled, nil
	}

	if target == s+1 {
		return target, nil
	}

	return Unknown, errs.NewBusinessRuleError(errs.ErrInvalidTransition,
		fmt.Sprintf("manifest cannot move from %s to %s", s, target))
}
