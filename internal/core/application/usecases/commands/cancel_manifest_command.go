package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCancelManifestCommandIsNotConstructed = errors.New(
		"CancelManifestCommand must be created via NewCancelManifestCommand constructor",
	)
)

// CancelManifestCommand represents a request to withdraw a manifest before
// its trip departs. A reason is mandatory.
type CancelManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelManifestCommand creates a command to cancel a manifest.
func NewCancelManifestCommand(manifestID kernel.UUID, reason string) (CancelManifestCommand, error) {
	cmd := CancelManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setReason(reason),
	); err != nil {
		return CancelManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelManifestCommand) Validate() error {
	return c.guard.Validate(ErrCancelManifestCommandIsNotConstructed)
}

// ManifestID returns the target manifest identifier.
func (c CancelManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Reason returns the cancellation reason.
func (c CancelManifestCommand) Reason() string {
	return c.reason
}

func (c *CancelManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *CancelManifestCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
