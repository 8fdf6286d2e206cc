package http

import (
	"errors"
	netHTTP "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// CreateInvoice handles POST /api/v1/invoices - opens an invoice against a
// billable source.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var request CreateInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	sourceType, err := invoice.ParseSourceType(request.SourceType)
	if err != nil {
		return problem(ctx, err)
	}

	sourceID, err := kernel.UUIDFromString(request.SourceID)
	if err != nil {
		return badRequest(ctx, "invalid source id")
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(
		invoiceID,
		sourceType,
		sourceID,
		request.CustomerID,
		kernel.NewMoney(request.Subtotal),
		request.TaxRate,
		request.DueDate,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(netHTTP.StatusCreated, IDResponse{ID: invoiceID.String()})
}

// GetInvoice handles GET /api/v1/invoices/:id - retrieves one invoice with
// its payment ledger.
func (s *Server) GetInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid invoice id")
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return problem(ctx, err)
	}

	inv, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	payments := make([]PaymentResponse, len(inv.Payments))
	for i, payment := range inv.Payments {
		payments[i] = PaymentResponse{
			ID:          payment.ID.String(),
			Amount:      payment.Amount,
			PaymentDate: payment.PaymentDate,
			Method:      payment.Method,
			Notes:       payment.Notes,
			ProofRef:    payment.ProofRef,
		}
	}

	return ctx.JSON(netHTTP.StatusOK, InvoiceResponse{
		ID:                 inv.ID.String(),
		SourceType:         inv.SourceType,
		SourceID:           inv.SourceID.String(),
		CustomerID:         inv.CustomerID,
		Subtotal:           inv.Subtotal,
		TaxRate:            inv.TaxRate,
		TaxAmount:          inv.TaxAmount,
		TotalAmount:        inv.TotalAmount,
		PaidAmount:         inv.PaidAmount,
		OutstandingAmount:  inv.OutstandingAmount,
		DueDate:            inv.DueDate,
		Status:             inv.Status,
		CancellationReason: inv.CancellationReason,
		Notes:              inv.Notes,
		Payments:           payments,
	})
}

// GetOutstandingInvoices handles GET /api/v1/invoices/outstanding - lists
// invoices that still carry an unpaid balance, ordered by due date.
func (s *Server) GetOutstandingInvoices(ctx echo.Context) error {
	query, err := queries.NewGetOutstandingInvoicesQuery(time.Now().UTC())
	if err != nil {
		return problem(ctx, err)
	}

	invoices, err := s.getOutstandingInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]OutstandingInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		response[i] = OutstandingInvoiceResponse{
			ID:                inv.ID.String(),
			SourceType:        inv.SourceType,
			SourceID:          inv.SourceID.String(),
			CustomerID:        inv.CustomerID,
			TotalAmount:       inv.TotalAmount,
			PaidAmount:        inv.PaidAmount,
			OutstandingAmount: inv.OutstandingAmount,
			DueDate:           inv.DueDate,
			Status:            inv.Status,
		}
	}

	return ctx.JSON(netHTTP.StatusOK, response)
}

// UpdateInvoice handles PATCH /api/v1/invoices/:id - edits an invoice.
// Fields absent from the body stay untouched.
func (s *Server) UpdateInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid invoice id")
	}

	var request UpdateInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var subtotal *kernel.Money
	if request.Subtotal != nil {
		money := kernel.NewMoney(*request.Subtotal)
		subtotal = &money
	}

	cmd, err := commands.NewUpdateInvoiceCommand(invoiceID, subtotal, request.TaxRate, request.DueDate, request.Notes)
	if errors.Is(err, commands.ErrNoInvoiceChanges) {
		return badRequest(ctx, err.Error())
	}
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.updateInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}

// CancelInvoice handles POST /api/v1/invoices/:id/cancel - voids an invoice
// that has not collected any payments.
func (s *Server) CancelInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid invoice id")
	}

	var request CancelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelInvoiceCommand(invoiceID, request.Reason)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.cancelInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}

// RecordPayment handles POST /api/v1/invoices/:id/payments - appends a
// payment to the invoice ledger and settles the derived status.
func (s *Server) RecordPayment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid invoice id")
	}

	var request RecordPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	method, err := invoice.ParsePaymentMethod(request.Method)
	if err != nil {
		return problem(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		invoiceID,
		paymentID,
		kernel.NewMoney(request.Amount),
		request.PaymentDate,
		method,
		request.Notes,
		request.ProofRef,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(netHTTP.StatusCreated, IDResponse{ID: paymentID.String()})
}
