package commands

import (
	"context"
)

// AdvanceJobOrderCommandHandler moves a job order through its lifecycle.
// The aggregate enforces the forward-only state machine; the handler only
// provides the transaction boundary.
type AdvanceJobOrderCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

// NewAdvanceJobOrderCommandHandler creates a handler for lifecycle advancement.
func NewAdvanceJobOrderCommandHandler(uowFactory JobOrderUoWFactory) AdvanceJobOrderCommandHandler {
	return AdvanceJobOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the job order, applies the transition, and persists it.
func (h *AdvanceJobOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceJobOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobOrderRepo := uow.JobOrderRepository()
	jobOrder, err := jobOrderRepo.Get(ctx, cmd.JobOrderID())
	if err != nil {
		return err
	}

	if err = jobOrder.Advance(cmd.Target()); err != nil {
		return err
	}

	if err = jobOrderRepo.Update(ctx, jobOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
