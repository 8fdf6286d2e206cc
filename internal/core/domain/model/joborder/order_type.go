package joborder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// OrderType is the shipment service type. It is immutable after creation and
// drives the manifest grouping rules: an FTL job order fills a manifest
// exclusively, LTL job orders may combine freely with other LTL job orders.
type OrderType int

const (
	// UnknownType represents an invalid or undefined order type.
	UnknownType OrderType = iota

	// FTL is a full-truckload shipment. It must be the sole occupant of any
	// manifest it joins.
	FTL

	// LTL is a less-than-truckload shipment. It may share a manifest with
	// other LTL shipments but never with an FTL one.
	LTL
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		UnknownType: "Unknown",
		FTL:         "FTL",
		LTL:         "LTL",
	}
}

// ParseOrderType converts an external representation to an OrderType.
// Both the short codes and the long service names are accepted.
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "FTL", "FullTruckload":
		return FTL, nil
	case "LTL", "LessThanTruckload":
		return LTL, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%q is not a valid order type", s))
	}
}

// Validate checks that the OrderType is FTL or LTL.
func (t OrderType) Validate() error {
	if t != FTL && t != LTL {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns "FTL", "LTL", or "Unknown".
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
