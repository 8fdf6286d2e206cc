package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceJobOrderCommandIsNotConstructed = errors.New(
		"AdvanceJobOrderCommand must be created via NewAdvanceJobOrderCommand constructor",
	)
)

// AdvanceJobOrderCommand represents a request to move a job order to its
// next lifecycle state, or to Cancelled. Skipping states is rejected by the
// aggregate, not by the command.
type AdvanceJobOrderCommand struct { //nolint:recvcheck //using for validation
	jobOrderID kernel.UUID
	target     joborder.Status

	guard guard.ConstructorGuard
}

// NewAdvanceJobOrderCommand creates a command to advance a job order.
func NewAdvanceJobOrderCommand(jobOrderID kernel.UUID, target joborder.Status) (AdvanceJobOrderCommand, error) {
	cmd := AdvanceJobOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobOrderID(jobOrderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceJobOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceJobOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceJobOrderCommandIsNotConstructed)
}

// JobOrderID returns the target job order identifier.
func (c AdvanceJobOrderCommand) JobOrderID() kernel.UUID {
	return c.jobOrderID
}

// Target returns the requested lifecycle state.
func (c AdvanceJobOrderCommand) Target() joborder.Status {
	return c.target
}

func (c *AdvanceJobOrderCommand) setJobOrderID(jobOrderID kernel.UUID) error {
	if err := jobOrderID.Validate(); err != nil {
		return err
	}

	c.jobOrderID = jobOrderID
	return nil
}

func (c *AdvanceJobOrderCommand) setTarget(target joborder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
