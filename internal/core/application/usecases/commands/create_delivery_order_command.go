package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
		"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
	)
)

// CreateDeliveryOrderCommand represents a request to derive a dispatch
// document from a job order or a manifest.
//
// For a manifest source, jobOrderID selects which member the document
// covers. For a job order source, jobOrderID is the source itself and
// sourceID must be empty. Explicit driver/vehicle values are optional: they
// override the resolved pair for job order sources and must match it for
// manifest sources.
//
// Example:
//
//	cmd, err := NewCreateDeliveryOrderCommand(
//	    kernel.NewUUID(), deliveryorder.SourceManifest, manifestID, memberID,
//	    "", "", deliveryorder.Normal, "ambient", doDate, nil, nil)
//	if err != nil {
//	    return err
//	}
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryOrderID kernel.UUID
	sourceType      deliveryorder.SourceType
	sourceID        kernel.UUID
	jobOrderID      kernel.UUID
	driverID        string
	vehicleID       string
	priority        deliveryorder.Priority
	temperature     string
	doDate          time.Time
	departureDate   *time.Time
	eta             *time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand creates a command to derive a delivery order.
// For SourceJobOrder, sourceID is ignored and may be the zero UUID; the job
// order itself is the source. Driver and vehicle are optional but come
// together or not at all.
func NewCreateDeliveryOrderCommand(
	deliveryOrderID kernel.UUID,
	sourceType deliveryorder.SourceType,
	sourceID kernel.UUID,
	jobOrderID kernel.UUID,
	driverID, vehicleID string,
	priority deliveryorder.Priority,
	temperature string,
	doDate time.Time,
	departureDate, eta *time.Time,
) (CreateDeliveryOrderCommand, error) {
	cmd := CreateDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryOrderID(deliveryOrderID),
		cmd.setSource(sourceType, sourceID, jobOrderID),
		cmd.setTransport(driverID, vehicleID),
		cmd.setPriority(priority),
		cmd.setSchedule(doDate, departureDate, eta),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	cmd.temperature = temperature
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

// DeliveryOrderID returns the unique identifier for the delivery order.
func (c CreateDeliveryOrderCommand) DeliveryOrderID() kernel.UUID {
	return c.deliveryOrderID
}

// SourceType returns the derivation source type.
func (c CreateDeliveryOrderCommand) SourceType() deliveryorder.SourceType {
	return c.sourceType
}

// SourceID returns the manifest identifier for manifest sources. For job
// order sources it equals JobOrderID.
func (c CreateDeliveryOrderCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// JobOrderID returns the job order the document covers.
func (c CreateDeliveryOrderCommand) JobOrderID() kernel.UUID {
	return c.jobOrderID
}

// DriverID returns the explicit driver, or "" to use the resolved one.
func (c CreateDeliveryOrderCommand) DriverID() string {
	return c.driverID
}

// VehicleID returns the explicit vehicle, or "" to use the resolved one.
func (c CreateDeliveryOrderCommand) VehicleID() string {
	return c.vehicleID
}

// HasExplicitTransport reports whether the caller supplied a pair.
func (c CreateDeliveryOrderCommand) HasExplicitTransport() bool {
	return c.driverID != ""
}

// Priority returns the dispatch priority.
func (c CreateDeliveryOrderCommand) Priority() deliveryorder.Priority {
	return c.priority
}

// Temperature returns the carriage temperature requirement. May be empty.
func (c CreateDeliveryOrderCommand) Temperature() string {
	return c.temperature
}

// DODate returns the document date.
func (c CreateDeliveryOrderCommand) DODate() time.Time {
	return c.doDate
}

// DepartureDate returns the planned departure, or nil.
func (c CreateDeliveryOrderCommand) DepartureDate() *time.Time {
	return c.departureDate
}

// ETA returns the planned arrival, or nil.
func (c CreateDeliveryOrderCommand) ETA() *time.Time {
	return c.eta
}

func (c *CreateDeliveryOrderCommand) setDeliveryOrderID(deliveryOrderID kernel.UUID) error {
	if err := deliveryOrderID.Validate(); err != nil {
		return err
	}

	c.deliveryOrderID = deliveryOrderID
	return nil
}

func (c *CreateDeliveryOrderCommand) setSource(
	sourceType deliveryorder.SourceType,
	sourceID, jobOrderID kernel.UUID,
) error {
	if err := sourceType.Validate(); err != nil {
		return err
	}
	if err := jobOrderID.Validate(); err != nil {
		return err
	}

	switch sourceType {
	case deliveryorder.SourceJobOrder:
		sourceID = jobOrderID
	case deliveryorder.SourceManifest:
		if err := sourceID.Validate(); err != nil {
			return err
		}
	}

	c.sourceType = sourceType
	c.sourceID = sourceID
	c.jobOrderID = jobOrderID
	return nil
}

func (c *CreateDeliveryOrderCommand) setTransport(driverID, vehicleID string) error {
	if (driverID == "") != (vehicleID == "") {
		return errs.NewValueIsRequiredError("driverId and vehicleId must be set together")
	}

	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateDeliveryOrderCommand) setPriority(priority deliveryorder.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateDeliveryOrderCommand) setSchedule(doDate time.Time, departureDate, eta *time.Time) error {
	if doDate.IsZero() {
		return errs.NewValueIsRequiredError("doDate")
	}

	c.doDate = doDate
	c.departureDate = departureDate
	c.eta = eta
	return nil
}
