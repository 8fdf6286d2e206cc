package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceManifestCommandIsNotConstructed = errors.New(
		"AdvanceManifestCommand must be created via NewAdvanceManifestCommand constructor",
	)
)

// AdvanceManifestCommand represents a request to move a manifest one step
// forward in its trip lifecycle. Cancellation goes through
// CancelManifestCommand, not here.
type AdvanceManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	target     manifest.Status

	guard guard.ConstructorGuard
}

// NewAdvanceManifestCommand creates a command to advance a manifest.
func NewAdvanceManifestCommand(manifestID kernel.UUID, target manifest.Status) (AdvanceManifestCommand, error) {
	cmd := AdvanceManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceManifestCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceManifestCommandIsNotConstructed)
}

// ManifestID returns the target manifest identifier.
func (c AdvanceManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Target returns the requested lifecycle state.
func (c AdvanceManifestCommand) Target() manifest.Status {
	return c.target
}

func (c *AdvanceManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *AdvanceManifestCommand) setTarget(target manifest.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
