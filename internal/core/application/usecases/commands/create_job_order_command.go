package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateJobOrderCommandIsNotConstructed = errors.New(
		"CreateJobOrderCommand must be created via NewCreateJobOrderCommand constructor",
	)
)

// CreateJobOrderCommand represents a request to register a customer shipment.
// Encapsulates the truckload type, the goods line, and the agreed order value.
//
// Example:
//
//	jobOrderID := kernel.NewUUID()
//	cmd, err := NewCreateJobOrderCommand(
//	    jobOrderID, joborder.FTL,
//	    decimal.NewFromInt(1200), decimal.NewFromInt(8), 40,
//	    kernel.NewMoneyFromInt(5_000_000))
//	if err != nil {
//	    return fmt.Errorf("invalid job order data: %w", err)
//	}
//
//	handler := NewCreateJobOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job order: %w", err)
//	}
type CreateJobOrderCommand struct { //nolint:recvcheck //using for validation
	jobOrderID kernel.UUID
	orderType  joborder.OrderType
	weightKg   decimal.Decimal
	volumeM3   decimal.Decimal
	quantity   int
	orderValue kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateJobOrderCommand creates a command to register a new job order.
// Validates the identifier, the truckload type, and that the goods line
// forms a valid Goods value. Returns an error if any validation fails.
func NewCreateJobOrderCommand(
	jobOrderID kernel.UUID,
	orderType joborder.OrderType,
	weightKg, volumeM3 decimal.Decimal,
	quantity int,
	orderValue kernel.Money,
) (CreateJobOrderCommand, error) {
	cmd := CreateJobOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobOrderID(jobOrderID),
		cmd.setOrderType(orderType),
		cmd.setGoodsLine(weightKg, volumeM3, quantity),
		cmd.setOrderValue(orderValue),
	); err != nil {
		return CreateJobOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobOrderCommandIsNotConstructed)
}

// JobOrderID returns the unique identifier for the job order.
func (c CreateJobOrderCommand) JobOrderID() kernel.UUID {
	return c.jobOrderID
}

// OrderType returns the truckload type.
func (c CreateJobOrderCommand) OrderType() joborder.OrderType {
	return c.orderType
}

// WeightKg returns the goods weight in kilograms.
func (c CreateJobOrderCommand) WeightKg() decimal.Decimal {
	return c.weightKg
}

// VolumeM3 returns the goods volume in cubic meters.
func (c CreateJobOrderCommand) VolumeM3() decimal.Decimal {
	return c.volumeM3
}

// Quantity returns the number of goods units.
func (c CreateJobOrderCommand) Quantity() int {
	return c.quantity
}

// OrderValue returns the agreed order value.
func (c CreateJobOrderCommand) OrderValue() kernel.Money {
	return c.orderValue
}

func (c *CreateJobOrderCommand) setJobOrderID(jobOrderID kernel.UUID) error {
	if err := jobOrderID.Validate(); err != nil {
		return err
	}

	c.jobOrderID = jobOrderID
	return nil
}

func (c *CreateJobOrderCommand) setOrderType(orderType joborder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateJobOrderCommand) setGoodsLine(weightKg, volumeM3 decimal.Decimal, quantity int) error {
	if _, err := joborder.NewGoods(weightKg, volumeM3, quantity); err != nil {
		return err
	}

	c.weightKg = weightKg
	c.volumeM3 = volumeM3
	c.quantity = quantity
	return nil
}

func (c *CreateJobOrderCommand) setOrderValue(orderValue kernel.Money) error {
	if orderValue.IsNegative() {
		return errs.NewValueIsInvalidError("orderValue")
	}

	c.orderValue = orderValue
	return nil
}
