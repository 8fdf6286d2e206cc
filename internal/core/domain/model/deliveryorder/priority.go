package deliveryorder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Priority is the dispatch priority of a delivery order.
type Priority int

const (
	// UnknownPriority represents an invalid priority.
	UnknownPriority Priority = iota

	// Low priority dispatch.
	Low

	// Normal is the default priority.
	Normal

	// High priority dispatch.
	High

	// Urgent dispatch, e.g. perishables or contractual deadlines.
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "Unknown",
		Low:             "Low",
		Normal:          "Normal",
		High:            "High",
		Urgent:          "Urgent",
	}
}

// ParsePriority converts an external representation to a Priority.
func ParsePriority(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s && priority != UnknownPriority {
			return priority, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks that the Priority is one of the defined levels.
func (p Priority) Validate() error {
	if p < Low || p > Urgent {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
