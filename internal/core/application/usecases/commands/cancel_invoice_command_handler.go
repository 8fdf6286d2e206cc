package commands

import (
	"context"
)

// CancelInvoiceCommandHandler withdraws an invoice. The row lock keeps the
// cancellation from racing a concurrent payment that would settle the
// invoice first.
type CancelInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCancelInvoiceCommandHandler creates a handler for invoice cancellation.
func NewCancelInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CancelInvoiceCommandHandler {
	return CancelInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the invoice row, cancels it with the reason, and persists it.
func (h *CancelInvoiceCommandHandler) Handle(ctx context.Context, cmd CancelInvoiceCommand) error {
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

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.GetForUpdate(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = inv.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
