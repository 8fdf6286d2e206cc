package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/pkg/errs"
)

// TransportResolution is the driver and vehicle pair a delivery order
// inherits from its source, plus whether the pair may still be overridden
// on the delivery order afterwards.
type TransportResolution struct {
	DriverID  string
	VehicleID string

	// Editable is true when the delivery order owns its transport and may
	// override it while still Pending. Manifest-derived transport is shared
	// by the whole trip and stays locked.
	Editable bool
}

// TransportResolver is a domain service deriving delivery order transport
// from the order's source.
//
// Business rules:
//   - A job order source contributes its active assignment, falling back to
//     the first on record, else empty; the pair stays editable either way
//   - A manifest source contributes its bound transport; the pair is locked
//   - A manifest without transport cannot produce a delivery order
//
// Example usage:
//
//	resolver := services.NewTransportResolver()
//	res, err := resolver.ResolveFromManifest(mf)
//	if errors.Is(err, errs.ErrMissingResource) {
//	    // bind transport to the manifest first
//	    return err
//	}
type TransportResolver struct{}

// NewTransportResolver creates a new TransportResolver instance.
func NewTransportResolver() TransportResolver {
	return TransportResolver{}
}

// ResolveFromJobOrder derives transport from the job order's active
// assignment, falling back to the first assignment on record. An unassigned
// job order resolves to empty values; the pair stays editable either way, so
// callers may substitute their own.
func (r TransportResolver) ResolveFromJobOrder(jo *joborder.JobOrder) (TransportResolution, error) {
	if err := jo.Validate(); err != nil {
		return TransportResolution{}, err
	}

	resolution := TransportResolution{Editable: true}
	if assignment := jo.ActiveAssignment(); assignment != nil {
		resolution.DriverID = assignment.DriverID()
		resolution.VehicleID = assignment.VehicleID()
	}
	return resolution, nil
}

// ResolveFromManifest derives transport from the manifest's bound driver
// and vehicle. Fails when the manifest has no transport bound yet.
func (r TransportResolver) ResolveFromManifest(mf *manifest.Manifest) (TransportResolution, error) {
	if err := mf.Validate(); err != nil {
		return TransportResolution{}, err
	}

	if !mf.HasTransport() {
		return TransportResolution{}, errs.NewBusinessRuleError(errs.ErrMissingResource,
			fmt.Sprintf("manifest %s has no transport bound", mf.ID()))
	}

	return TransportResolution{
		DriverID:  mf.DriverID(),
		VehicleID: mf.VehicleID(),
		Editable:  false,
	}, nil
}
