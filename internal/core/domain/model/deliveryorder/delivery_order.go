package deliveryorder

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliveryOrderIsNotConstructed is returned when a DeliveryOrder instance
// was not created through NewDeliveryOrder or RestoreDeliveryOrder.
var ErrDeliveryOrderIsNotConstructed = errors.New(
	"DeliveryOrder must be created via NewDeliveryOrder or RestoreDeliveryOrder constructor")

// Schedule groups the dispatch dates of a delivery order. DODate is the
// document date and is required; departure and ETA are optional planning
// values; DeliveredDate is stamped by the aggregate when the status reaches
// Delivered.
type Schedule struct {
	DODate        time.Time
	DepartureDate *time.Time
	ETA           *time.Time
	DeliveredDate *time.Time
}

// DeliveryOrder is the aggregate root for a dispatch document.
//
// Invariants:
//   - Driver and vehicle are non-empty before the order is valid for dispatch
//   - Manifest-sourced orders carry the manifest's transport and lock it
//   - Status transitions follow the lifecycle in Status; cancellation
//     requires a reason and is impossible after delivery
type DeliveryOrder struct {
	id              kernel.UUID
	source          Source
	driverID        string
	vehicleID       string
	transportLocked bool
	status          Status
	priority        Priority
	temperature     string
	schedule        Schedule

	cancellationReason string

	isConstructed bool
}

// NewDeliveryOrder creates a delivery order in Pending status. Transport is
// mandatory for both source types; for manifest sources the caller passes the
// manifest's resolved transport and the pair is locked against overrides.
func NewDeliveryOrder(
	id kernel.UUID,
	source Source,
	driverID, vehicleID string,
	priority Priority,
	temperature string,
	schedule Schedule,
) (*DeliveryOrder, error) {
	if err := errors.Join(
		id.Validate(),
		source.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID == "" {
		return nil, errs.NewBusinessRuleError(errs.ErrMissingResource, "driver is required")
	}
	if vehicleID == "" {
		return nil, errs.NewBusinessRuleError(errs.ErrMissingResource, "vehicle is required")
	}
	if schedule.DODate.IsZero() {
		return nil, errs.NewValueIsRequiredError("doDate")
	}

	return &DeliveryOrder{
		id:              id,
		source:          source,
		driverID:        driverID,
		vehicleID:       vehicleID,
		transportLocked: source.Type() == SourceManifest,
		status:          Pending,
		priority:        priority,
		temperature:     temperature,
		schedule:        schedule,
		isConstructed:   true,
	}, nil
}

// RestoreDeliveryOrder reconstructs a delivery order from persistence.
func RestoreDeliveryOrder(
	id kernel.UUID,
	source Source,
	driverID, vehicleID string,
	status Status,
	priority Priority,
	temperature string,
	schedule Schedule,
	cancellationReason string,
) (*DeliveryOrder, error) {
	do, err := NewDeliveryOrder(id, source, driverID, vehicleID, priority, temperature, schedule)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status == Cancelled && cancellationReason == "" {
		return nil, errs.NewValueIsRequiredError("cancellationReason")
	}

	do.status = status
	do.cancellationReason = cancellationReason
	return do, nil
}

// Validate ensures the DeliveryOrder was created through a constructor.
func (d *DeliveryOrder) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two delivery orders by identifier.
func (d *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery order's unique identifier.
func (d *DeliveryOrder) ID() kernel.UUID {
	return d.id
}

// Source returns what the delivery order was derived from.
func (d *DeliveryOrder) Source() Source {
	return d.source
}

// DriverID returns the assigned driver's resource code.
func (d *DeliveryOrder) DriverID() string {
	return d.driverID
}

// VehicleID returns the assigned vehicle's resource code.
func (d *DeliveryOrder) VehicleID() string {
	return d.vehicleID
}

// TransportLocked reports whether driver/vehicle are inherited from a
// manifest and frozen.
func (d *DeliveryOrder) TransportLocked() bool {
	return d.transportLocked
}

// Status returns the current lifecycle status.
func (d *DeliveryOrder) Status() Status {
	return d.status
}

// Priority returns the dispatch priority.
func (d *DeliveryOrder) Priority() Priority {
	return d.priority
}

// Temperature returns the carriage temperature requirement, e.g. "ambient"
// or "-18C". May be empty.
func (d *DeliveryOrder) Temperature() string {
	return d.temperature
}

// Schedule returns the dispatch dates.
func (d *DeliveryOrder) Schedule() Schedule {
	return d.schedule
}

// CancellationReason returns the reason recorded on cancellation, or "".
func (d *DeliveryOrder) CancellationReason() string {
	return d.cancellationReason
}

// OverrideTransport replaces the driver/vehicle pair. Only job-order-sourced
// delivery orders allow overrides, and only before dispatch; manifest-sourced
// transport is committed and frozen.
func (d *DeliveryOrder) OverrideTransport(driverID, vehicleID string) error {
	if d.transportLocked {
		return errs.NewBusinessRuleError(errs.ErrEditLocked,
			"transport is inherited from the manifest and cannot be changed")
	}
	if d.status != Pending {
		return errs.NewBusinessRuleError(errs.ErrEditLocked,
			fmt.Sprintf("transport can only be changed while Pending, not %s", d.status))
	}
	if driverID == "" {
		return errs.NewBusinessRuleError(errs.ErrMissingResource, "driver is required")
	}
	if vehicleID == "" {
		return errs.NewBusinessRuleError(errs.ErrMissingResource, "vehicle is required")
	}

	d.driverID = driverID
	d.vehicleID = vehicleID
	return nil
}

// Advance moves the delivery order to the target status. Reaching Delivered
// stamps the delivered date with now.
func (d *DeliveryOrder) Advance(target Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = newStatus
	if newStatus == Delivered {
		delivered := now
		d.schedule.DeliveredDate = &delivered
	}
	return nil
}

// Cancel withdraws the delivery order with a mandatory reason. A delivered
// delivery order cannot be cancelled.
func (d *DeliveryOrder) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}
	if d.status == Delivered {
		return errs.NewBusinessRuleError(errs.ErrCancellationNotAllowed,
			"a delivered delivery order cannot be cancelled")
	}

	newStatus, err := d.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.cancellationReason = reason
	return nil
}
