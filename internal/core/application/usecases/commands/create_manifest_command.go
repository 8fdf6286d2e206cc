package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateManifestCommandIsNotConstructed = errors.New(
		"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
	)
)

// CreateManifestCommand represents a request to group job orders into a
// consolidated trip. Transport may be bound at creation time or later;
// driver and vehicle come together or not at all.
//
// Example:
//
//	cmd, err := NewCreateManifestCommand(
//	    kernel.NewUUID(), []kernel.UUID{jo1, jo2}, "DRV-7", "VEH-12")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateManifestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errors.Is(err, errs.ErrGroupingConflict) on FTL violations
//	    return err
//	}
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID  kernel.UUID
	jobOrderIDs []kernel.UUID
	driverID    string
	vehicleID   string

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a command to compose a manifest. The
// selection must be non-empty and free of duplicates; truckload
// compatibility is checked by the handler against the real aggregates.
func NewCreateManifestCommand(
	manifestID kernel.UUID,
	jobOrderIDs []kernel.UUID,
	driverID, vehicleID string,
) (CreateManifestCommand, error) {
	cmd := CreateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setJobOrderIDs(jobOrderIDs),
		cmd.setTransport(driverID, vehicleID),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// ManifestID returns the unique identifier for the manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// JobOrderIDs returns the selected job order identifiers.
func (c CreateManifestCommand) JobOrderIDs() []kernel.UUID {
	return c.jobOrderIDs
}

// DriverID returns the driver to bind, or "" when binding is deferred.
func (c CreateManifestCommand) DriverID() string {
	return c.driverID
}

// VehicleID returns the vehicle to bind, or "" when binding is deferred.
func (c CreateManifestCommand) VehicleID() string {
	return c.vehicleID
}

// HasTransport reports whether transport is bound at creation time.
func (c CreateManifestCommand) HasTransport() bool {
	return c.driverID != ""
}

func (c *CreateManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *CreateManifestCommand) setJobOrderIDs(jobOrderIDs []kernel.UUID) error {
	if len(jobOrderIDs) == 0 {
		return errs.NewValueIsRequiredError("jobOrderIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(jobOrderIDs))
	for _, id := range jobOrderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidError("jobOrderIds: duplicate entry")
		}
		seen[id] = struct{}{}
	}

	c.jobOrderIDs = jobOrderIDs
	return nil
}

func (c *CreateManifestCommand) setTransport(driverID, vehicleID string) error {
	if (driverID == "") != (vehicleID == "") {
		return errs.NewValueIsRequiredError("driverId and vehicleId must be set together")
	}

	c.driverID = driverID
	c.vehicleID = vehicleID
	return nil
}
