package commands

import (
	"context"
	"time"
)

// AdvanceDeliveryOrderCommandHandler moves a delivery order through its
// dispatch lifecycle. Reaching Delivered stamps the delivered date.
type AdvanceDeliveryOrderCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
}

// NewAdvanceDeliveryOrderCommandHandler creates a handler for delivery order
// advancement.
func NewAdvanceDeliveryOrderCommandHandler(uowFactory DeliveryOrderUoWFactory) AdvanceDeliveryOrderCommandHandler {
	return AdvanceDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the delivery order, applies the transition, and persists it.
func (h *AdvanceDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryOrderCommand) error {
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

	if err = do.Advance(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryOrderRepo.Update(ctx, do); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
