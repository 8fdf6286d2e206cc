package commands

import (
	"context"
)

// AssignTransportCommandHandler binds a driver/vehicle pair to a job order.
// Moves a Created job order to Assigned; on an already Assigned one the
// previous pair is released and kept as history.
type AssignTransportCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

// NewAssignTransportCommandHandler creates a handler for transport assignment.
func NewAssignTransportCommandHandler(uowFactory JobOrderUoWFactory) AssignTransportCommandHandler {
	return AssignTransportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the job order, applies the assignment, and persists the
// updated aggregate within a transaction.
func (h *AssignTransportCommandHandler) Handle(ctx context.Context, cmd AssignTransportCommand) error {
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

	if err = jobOrder.AssignTransport(cmd.DriverID(), cmd.VehicleID()); err != nil {
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
