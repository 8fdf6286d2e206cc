package commands

import (
	"context"
	"time"
)

// SweepOverdueInvoicesCommandHandler persists the Overdue status on stored
// invoice rows whose due date has passed. Only invoices still stored as
// Pending can flip; anything with a payment is Partial and stays put.
type SweepOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewSweepOverdueInvoicesCommandHandler creates a handler for the overdue sweep.
func NewSweepOverdueInvoicesCommandHandler(uowFactory InvoiceUoWFactory) SweepOverdueInvoicesCommandHandler {
	return SweepOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads every Pending invoice past its due date, re-derives each
// status, and persists the ones that changed in a single transaction.
func (h *SweepOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd SweepOverdueInvoicesCommand) error {
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

	now := time.Now().UTC()
	invoiceRepo := uow.InvoiceRepository()

	stale, err := invoiceRepo.GetAllDueBefore(ctx, now)
	if err != nil {
		return err
	}

	for _, inv := range stale {
		if !inv.RefreshStatus(now) {
			continue
		}
		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
