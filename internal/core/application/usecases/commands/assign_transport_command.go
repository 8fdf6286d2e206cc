package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignTransportCommandIsNotConstructed = errors.New(
		"AssignTransportCommand must be created via NewAssignTransportCommand constructor",
	)
)

// AssignTransportCommand represents a request to bind a driver/vehicle pair
// to a job order. Reassignment releases the previous pair.
type AssignTransportCommand struct { //nolint:recvcheck //using for validation
	jobOrderID kernel.UUID
	driverID   string
	vehicleID  string

	guard guard.ConstructorGuard
}

// NewAssignTransportCommand creates a command to assign transport.
// Both driver and vehicle are required; partial assignment is not a thing.
func NewAssignTransportCommand(jobOrderID kernel.UUID, driverID, vehicleID string) (AssignTransportCommand, error) {
	cmd := AssignTransportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobOrderID(jobOrderID),
		cmd.setTransport(driverID, vehicleID),
	); err != nil {
		return AssignTransportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTransportCommand) Validate() error {
	return c.guard.Validate(ErrAssignTransportCommandIsNotConstructed)
}

// JobOrderID returns the target job order identifier.
func (c AssignTransportCommand) JobOrderID() kernel.UUID {
	return c.jobOrderID
}

// DriverID returns the driver to bind.
func (c AssignTransportCommand) DriverID() string {
	return c.driverID
}

// VehicleID returns the vehicle to bind.
func (c AssignTransportCommand) VehicleID() string {
	return c.vehicleID
}

func (c *AssignTransportCommand) setJobOrderID(jobOrderID kernel.UUID) error {
	if err := jobOrderID.Validate(); err != nil {
		return err
	}

	c.jobOrderID = jobOrderID
	return nil
}

func (c *AssignTransportCommand) setTransport(driverID, vehicleID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}

	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}
