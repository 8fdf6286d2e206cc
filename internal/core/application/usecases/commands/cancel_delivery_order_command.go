package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCancelDeliveryOrderCommandIsNotConstructed = errors.New(
		"CancelDeliveryOrderCommand must be created via NewCancelDeliveryOrderCommand constructor",
	)
)

// CancelDeliveryOrderCommand represents a request to withdraw a delivery
// order. A reason is mandatory; cancelling releases the source claim so the
// covered job order can be dispatched again.
type CancelDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryOrderID kernel.UUID
	reason          string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryOrderCommand creates a command to cancel a delivery order.
func NewCancelDeliveryOrderCommand(deliveryOrderID kernel.UUID, reason string) (CancelDeliveryOrderCommand, error) {
	cmd := CancelDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryOrderID(deliveryOrderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryOrderCommandIsNotConstructed)
}

// DeliveryOrderID returns the target delivery order identifier.
func (c CancelDeliveryOrderCommand) DeliveryOrderID() kernel.UUID {
	return c.deliveryOrderID
}

// Reason returns the cancellation reason.
func (c CancelDeliveryOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelDeliveryOrderCommand) setDeliveryOrderID(deliveryOrderID kernel.UUID) error {
	if err := deliveryOrderID.Validate(); err != nil {
		return err
	}

	c.deliveryOrderID = deliveryOrderID
	return nil
}

func (c *CancelDeliveryOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
