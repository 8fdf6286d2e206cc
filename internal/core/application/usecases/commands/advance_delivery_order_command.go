package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceDeliveryOrderCommandIsNotConstructed = errors.New(
		"AdvanceDeliveryOrderCommand must be created via NewAdvanceDeliveryOrderCommand constructor",
	)
)

// AdvanceDeliveryOrderCommand represents a request to move a delivery order
// along its dispatch lifecycle. Cancellation goes through
// CancelDeliveryOrderCommand.
type AdvanceDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryOrderID kernel.UUID
	target          deliveryorder.Status

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryOrderCommand creates a command to advance a delivery order.
func NewAdvanceDeliveryOrderCommand(
	deliveryOrderID kernel.UUID,
	target deliveryorder.Status,
) (AdvanceDeliveryOrderCommand, error) {
	cmd := AdvanceDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryOrderID(deliveryOrderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryOrderCommandIsNotConstructed)
}

// DeliveryOrderID returns the target delivery order identifier.
func (c AdvanceDeliveryOrderCommand) DeliveryOrderID() kernel.UUID {
	return c.deliveryOrderID
}

// Target returns the requested lifecycle state.
func (c AdvanceDeliveryOrderCommand) Target() deliveryorder.Status {
	return c.target
}

func (c *AdvanceDeliveryOrderCommand) setDeliveryOrderID(deliveryOrderID kernel.UUID) error {
	if err := deliveryOrderID.Validate(); err != nil {
		return err
	}

	c.deliveryOrderID = deliveryOrderID
	return nil
}

func (c *AdvanceDeliveryOrderCommand) setTarget(target deliveryorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
