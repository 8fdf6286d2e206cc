package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrBindManifestTransportCommandIsNotConstructed = errors.New(
		"BindManifestTransportCommand must be created via NewBindManifestTransportCommand constructor",
	)
)

// BindManifestTransportCommand represents a request to bind a driver/vehicle
// pair to a manifest whose binding was deferred at creation. The pair binds
// once; the aggregate rejects rebinding.
type BindManifestTransportCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	driverID   string
	vehicleID  string

	guard guard.ConstructorGuard
}

// NewBindManifestTransportCommand creates a command to bind manifest transport.
func NewBindManifestTransportCommand(
	manifestID kernel.UUID,
	driverID, vehicleID string,
) (BindManifestTransportCommand, error) {
	cmd := BindManifestTransportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setTransport(driverID, vehicleID),
	); err != nil {
		return BindManifestTransportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BindManifestTransportCommand) Validate() error {
	return c.guard.Validate(ErrBindManifestTransportCommandIsNotConstructed)
}

// ManifestID returns the target manifest identifier.
func (c BindManifestTransportCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// DriverID returns the driver to bind.
func (c BindManifestTransportCommand) DriverID() string {
	return c.driverID
}

// VehicleID returns the vehicle to bind.
func (c BindManifestTransportCommand) VehicleID() string {
	return c.vehicleID
}

func (c *BindManifestTransportCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *BindManifestTransportCommand) setTransport(driverID, vehicleID string) error {
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
