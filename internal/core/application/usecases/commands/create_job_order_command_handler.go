package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/joborder"
)

// CreateJobOrderCommandHandler handles the business logic for job order
// registration. New job orders start in Created status with no transport.
//
// Example:
//
//	handler := NewCreateJobOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateJobOrderCommand(id, joborder.LTL, weight, volume, 10, value)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job order creation failed: %w", err)
//	}
type CreateJobOrderCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

// NewCreateJobOrderCommandHandler creates a handler for job order creation.
// Requires a JobOrderUoWFactory for transactional persistence.
func NewCreateJobOrderCommandHandler(uowFactory JobOrderUoWFactory) CreateJobOrderCommandHandler {
	return CreateJobOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job order creation command.
// Builds the goods line and the aggregate, then persists it transactionally.
func (h *CreateJobOrderCommandHandler) Handle(ctx context.Context, cmd CreateJobOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	goods, err := joborder.NewGoods(cmd.WeightKg(), cmd.VolumeM3(), cmd.Quantity())
	if err != nil {
		return err
	}

	jobOrder, err := joborder.NewJobOrder(cmd.JobOrderID(), cmd.OrderType(), goods, cmd.OrderValue())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobOrderRepository().Add(ctx, jobOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
