package commands

import (
	"context"
	"time"
)

// UpdateInvoiceCommandHandler edits an open invoice. The aggregate enforces
// edit locking: amounts freeze after the first payment, everything freezes
// on cancellation.
type UpdateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceCommandHandler creates a handler for invoice edits.
func NewUpdateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceCommandHandler {
	return UpdateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the invoice row, applies the requested edits, and persists
// the updated aggregate. The row lock keeps an amount edit from racing a
// concurrent payment past the edit-lock check.
func (h *UpdateInvoiceCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceCommand) error {
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

	now := time.Now().UTC()
	if cmd.Subtotal() != nil {
		if err = inv.UpdateAmounts(*cmd.Subtotal(), *cmd.TaxRate(), now); err != nil {
			return err
		}
	}
	if cmd.DueDate() != nil {
		if err = inv.UpdateDueDate(*cmd.DueDate(), now); err != nil {
			return err
		}
	}
	if cmd.Notes() != nil {
		if err = inv.UpdateNotes(*cmd.Notes()); err != nil {
			return err
		}
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
