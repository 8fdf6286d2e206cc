package deliveryorder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order:
//
//	Pending -> InTransit -> AtDestination -> Delivered
//	        \------------>/           \
//	         \-------------------------> (InTransit may skip to Delivered)
//
// Any state before Delivered may move to Cancelled with a mandatory reason.
// Delivered and Cancelled are terminal; a delivered delivery order can never
// be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the dispatch document exists but the
	// vehicle has not departed.
	Pending

	// InTransit indicates the shipment is on its way.
	InTransit

	// AtDestination indicates the vehicle arrived at the delivery point.
	AtDestination

	// Delivered indicates the goods were handed over. Terminal.
	Delivered

	// Cancelled indicates the dispatch was withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		InTransit:     "InTransit",
		AtDestination: "AtDestination",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
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
		fmt.Errorf("%q is not a valid delivery order status", s))
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
	return s == Delivered || s == Cancelled
}

// TransitionTo validates and performs a transition to target.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			fmt.Sprintf("delivery order is %s and accepts no further transitions", s))
	}

	if target == Cancelled {
		return Cancelled, nil
	}

	allowed := map[Status][]Status{
		Pending:       {InTransit, AtDestination},
		InTransit:     {AtDestination, Delivered},
		AtDestination: {Delivered},
	}
	for _, next := range allowed[s] {
		if next == target {
			return target, nil
		}
	}

	return Unknown, errs.NewBusinessRuleError(errs.ErrInvalidTransition,
		fmt.Sprintf("delivery order cannot move from %s to %s", s, target))
}
