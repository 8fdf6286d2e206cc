package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
)

// CreateInvoiceCommandHandler opens a billing record. Tax and total are
// computed by the aggregate from the subtotal and percent rate.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the invoice aggregate and persists it transactionally.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	inv, err := invoice.NewInvoice(
		cmd.InvoiceID(), cmd.SourceType(), cmd.SourceID(), cmd.CustomerID(),
		cmd.Subtotal(), cmd.TaxRate(), cmd.DueDate(), time.Now().UTC())
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

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
