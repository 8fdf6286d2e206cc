package deliveryorder

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// SourceType identifies what a delivery order was derived from.
type SourceType int

const (
	// UnknownSource represents an invalid source type.
	UnknownSource SourceType = iota

	// SourceJobOrder derives the delivery order directly from a job order.
	SourceJobOrder

	// SourceManifest derives the delivery order from one selected job order
	// within a manifest.
	SourceManifest
)

// ParseSourceType converts the wire codes "JO" and "MF".
func ParseSourceType(s string) (SourceType, error) {
	switch s {
	case "JO":
		return SourceJobOrder, nil
	case "MF":
		return SourceManifest, nil
	default:
		return UnknownSource, errs.NewValueIsInvalidErrorWithCause("sourceType",
			fmt.Errorf("%q is not a valid source type", s))
	}
}

// Validate checks that the source type is one of the defined values.
func (t SourceType) Validate() error {
	if t < SourceJobOrder || t > SourceManifest {
		return errs.NewValueIsInvalidErrorWithCause("sourceType",
			fmt.Errorf("%d is not a valid source type", t))
	}
	return nil
}

// String returns "JO", "MF", or "Unknown".
func (t SourceType) String() string {
	switch t {
	case SourceJobOrder:
		return "JO"
	case SourceManifest:
		return "MF"
	default:
		return "Unknown"
	}
}

// ErrSourceIsNotConstructed is returned when a Source was not created through
// NewJobOrderSource or NewManifestSource.
var ErrSourceIsNotConstructed = errs.NewValueIsRequiredError(
	"Source must be created via NewJobOrderSource or NewManifestSource")

// Source is a value object pinpointing what a delivery order covers. For
// manifest sources it additionally carries the selected job order, since one
// manifest legitimately yields many delivery orders, one per distinct
// constituent shipment.
type Source struct {
	sourceType          SourceType
	sourceID            kernel.UUID
	selectedJobOrderID  kernel.UUID
	hasSelectedJobOrder bool

	guard guard.ConstructorGuard
}

// NewJobOrderSource creates a JO-type source covering the given job order.
func NewJobOrderSource(jobOrderID kernel.UUID) (Source, error) {
	if err := jobOrderID.Validate(); err != nil {
		return Source{}, err
	}

	return Source{
		sourceType: SourceJobOrder,
		sourceID:   jobOrderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewManifestSource creates an MF-type source covering one selected job order
// within the manifest.
func NewManifestSource(manifestID, selectedJobOrderID kernel.UUID) (Source, error) {
	if err := manifestID.Validate(); err != nil {
		return Source{}, err
	}
	if err := selectedJobOrderID.Validate(); err != nil {
		return Source{}, errs.NewValueIsRequiredErrorWithCause("selectedJobOrderId", err)
	}

	return Source{
		sourceType:          SourceManifest,
		sourceID:            manifestID,
		selectedJobOrderID:  selectedJobOrderID,
		hasSelectedJobOrder: true,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the source was created through a constructor.
func (s Source) Validate() error {
	return s.guard.Validate(ErrSourceIsNotConstructed)
}

// Type returns the source type.
func (s Source) Type() SourceType {
	return s.sourceType
}

// ID returns the job order ID for JO sources or the manifest ID for MF
// sources.
func (s Source) ID() kernel.UUID {
	return s.sourceID
}

// SelectedJobOrderID returns the constituent job order an MF-type source
// covers. The second return is false for JO sources.
func (s Source) SelectedJobOrderID() (kernel.UUID, bool) {
	return s.selectedJobOrderID, s.hasSelectedJobOrder
}

// CoveredJobOrderID returns the job order the delivery order ultimately
// covers: the source itself for JO sources, the selected constituent for MF
// sources.
func (s Source) CoveredJobOrderID() kernel.UUID {
	if s.hasSelectedJobOrder {
		return s.selectedJobOrderID
	}
	return s.sourceID
}
