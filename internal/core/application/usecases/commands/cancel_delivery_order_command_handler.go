package commands

import (
	"context"
)

// CancelDeliveryOrderCommandHandler withdraws a delivery order and releases
// its source claim in the same transaction, so the covered job order
// becomes derivable again the moment the cancellation commits.
type CancelDeliveryOrderCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewCancelDeliveryOrderCommandHandler creates a handler for delivery order
// cancellation.
func NewCancelDeliveryOrderCommandHandler(uowFactory DeliveryOrderUoWFactory) CancelDeliveryOrderCommandHandler {
	return CancelDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the delivery order, cancels it, releases the claim, and
// persists both changes atomically.
func (h *CancelDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryOrderCommand) error {
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

	deliveryOrderRepo := uow.DeliveryOrderRepository()
	do, err := deliveryOrderRepo.Get(ctx, cmd.DeliveryOrderID())
	if err != nil {
		return err
	}

	if err = do.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = deliveryOrderRepo.Update(ctx, do); err != nil {
		return err
	}

	if err = uow.SourceClaimRepository().Release(ctx, do.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
