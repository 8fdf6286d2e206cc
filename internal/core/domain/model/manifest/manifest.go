package manifest

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrManifestIsNotConstructed is returned when a Manifest instance was not
// created through NewManifest or RestoreManifest.
var ErrManifestIsNotConstructed = errors.New(
	"Manifest must be created via NewManifest or RestoreManifest constructor")

// Manifest is the aggregate root for one vehicle trip grouping compatible
// job orders.
//
// Invariants:
//   - Constituent job orders satisfy the grouping rules (FTL exclusivity)
//   - Transport is bound at most once and never rebound
//   - Status transitions follow the forward-only lifecycle in Status
//   - Cancellation requires a non-empty reason and blocks delivery order
//     creation from the manifest thereafter
type Manifest struct {
	id                 kernel.UUID
	status             Status
	driverID           string
	vehicleID          string
	jobOrders          []joborder.Ref
	cancellationReason string

	isConstructed bool
}

// NewManifest creates a manifest in Pending status from an initial selection
// of job orders. The selection must be non-empty and pass the grouping rules.
// Transport may be bound later via BindTransport.
func NewManifest(id kernel.UUID, selection []joborder.Ref) (*Manifest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateSelection(selection); err != nil {
		return nil, err
	}

	return &Manifest{
		id:            id,
		status:        Pending,
		jobOrders:     append([]joborder.Ref(nil), selection...),
		isConstructed: true,
	}, nil
}

// RestoreManifest reconstructs a manifest from persistence. Driver and
// vehicle must be both set or both empty.
func RestoreManifest(
	id kernel.UUID,
	status Status,
	driverID, vehicleID string,
	selection []joborder.Ref,
	cancellationReason string,
) (*Manifest, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		ValidateSelection(selection),
	); err != nil {
		return nil, err
	}

	if (driverID == "") != (vehicleID == "") {
		return nil, errs.NewValueIsInvalidError("transport: driver and vehicle must be bound together")
	}
	if status == Cancelled && cancellationReason == "" {
		return nil, errs.NewValueIsRequiredError("cancellationReason")
	}

	return &Manifest{
		id:                 id,
		status:             status,
		driverID:           driverID,
		vehicleID:          vehicleID,
		jobOrders:          append([]joborder.Ref(nil), selection...),
		cancellationReason: cancellationReason,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Manifest was created through a constructor.
func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

// IsEqual compares two manifests by identifier.
func (m *Manifest) IsEqual(other *Manifest) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the manifest's unique identifier.
func (m *Manifest) ID() kernel.UUID {
	return m.id
}

// Status returns the current lifecycle status.
func (m *Manifest) Status() Status {
	return m.status
}

// DriverID returns the bound driver's resource code, or "" when unbound.
func (m *Manifest) DriverID() string {
	return m.driverID
}

// VehicleID returns the bound vehicle's resource code, or "" when unbound.
func (m *Manifest) VehicleID() string {
	return m.vehicleID
}

// HasTransport reports whether a driver/vehicle pair is bound.
func (m *Manifest) HasTransport() bool {
	return m.driverID != "" && m.vehicleID != ""
}

// JobOrders returns the constituent job order references in insertion order.
func (m *Manifest) JobOrders() []joborder.Ref {
	return m.jobOrders
}

// HasJobOrder reports whether the given job order is a constituent of the
// manifest.
func (m *Manifest) HasJobOrder(id kernel.UUID) bool {
	for _, ref := range m.jobOrders {
		if ref.ID.IsEqual(id) {
			return true
		}
	}
	return false
}

// CancellationReason returns the reason recorded on cancellation, or "".
func (m *Manifest) CancellationReason() string {
	return m.cancellationReason
}

// CanCreateDeliveryOrder reports whether delivery orders may still be derived
// from the manifest. A cancelled manifest blocks derivation permanently.
func (m *Manifest) CanCreateDeliveryOrder() bool {
	return m.status != Cancelled
}

// AddJobOrder appends a job order to the manifest, enforcing the grouping
// rules against the current constituents. Additions are only allowed while
// the manifest is Pending.
func (m *Manifest) AddJobOrder(candidate joborder.Ref) error {
	if m.status != Pending {
		return errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			fmt.Sprintf("job orders can only be added while the manifest is Pending, not %s", m.status))
	}
	if err := ValidateAddition(m.jobOrders, candidate); err != nil {
		return err
	}

	m.jobOrders = append(m.jobOrders, candidate)
	return nil
}

// BindTransport binds the driver/vehicle pair for the trip. The binding is
// permanent: a manifest's resources are committed and must not be silently
// changed from a derived delivery order or a later edit.
func (m *Manifest) BindTransport(driverID, vehicleID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}
	if m.HasTransport() {
		return errs.NewBusinessRuleError(errs.ErrEditLocked,
			"manifest transport is already bound and cannot be changed")
	}
	if m.status.IsTerminal() {
		return errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			fmt.Sprintf("manifest is %s and accepts no transport binding", m.status))
	}

	m.driverID = driverID
	m.vehicleID = vehicleID
	return nil
}

// Advance moves the manifest to the target status, enforcing the forward-only
// lifecycle.
func (m *Manifest) Advance(target Status) error {
	newStatus, err := m.status.TransitionTo(target)
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// Cancel withdraws the manifest with a mandatory reason. Only allowed while
// Pending or Loading.
func (m *Manifest) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	newStatus, err := m.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	m.status = newStatus
	m.cancellationReason = reason
	return nil
}
