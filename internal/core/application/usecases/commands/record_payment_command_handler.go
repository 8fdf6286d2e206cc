package commands

import (
	"context"
	"time"
)

// RecordPaymentCommandHandler appends a ledger entry and recomputes the
// invoice's paid amount and status in one transaction. The invoice is
// loaded through GetForUpdate, so two concurrent payments against the same
// invoice serialize at the database and cannot both slip past the
// overpayment check.
type RecordPaymentCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory InvoiceUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the invoice row, applies the payment, and persists the new
// ledger entry together with the recomputed invoice state.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	payment, err := inv.RecordPayment(
		cmd.PaymentID(), cmd.Amount(), cmd.PaymentDate(),
		cmd.Method(), cmd.Notes(), cmd.ProofRef(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = invoiceRepo.AddPayment(ctx, payment); err != nil {
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
