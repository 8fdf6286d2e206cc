package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler retrieves a single invoice and its payment ledger
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for invoice retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the query to retrieve one invoice with its ledger.
// Returns an ObjectNotFound error when no invoice exists with the given
// identifier. Payments are sorted by payment date.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	var response GetInvoiceQueryResponse
	var id, sourceID uuid.UUID
	var sourceType, status int
	var cancellationReason, notes sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			source_type,
			source_id,
			customer_id,
			subtotal,
			tax_rate,
			tax_amount,
			total_amount,
			paid_amount,
			due_date,
			status,
			cancellation_reason,
			notes
		FROM invoices
		WHERE id = ?
	`, query.InvoiceID().Bytes()).Row()

	err := row.Scan(
		&id,
		&sourceType,
		&sourceID,
		&response.CustomerID,
		&response.Subtotal,
		&response.TaxRate,
		&response.TaxAmount,
		&response.TotalAmount,
		&response.PaidAmount,
		&response.DueDate,
		&status,
		&cancellationReason,
		&notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetInvoiceQueryResponse{}, errs.NewObjectNotFoundError(
				"invoice", query.InvoiceID())
		}
		return GetInvoiceQueryResponse{}, err
	}

	invoiceID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetInvoiceQueryResponse{}, idErr
	}
	response.ID = invoiceID

	invoiceSourceID, idErr := kernel.UUIDFromBytes(sourceID[:])
	if idErr != nil {
		return GetInvoiceQueryResponse{}, idErr
	}
	response.SourceID = invoiceSourceID

	response.SourceType = invoice.SourceType(sourceType).String()
	response.Status = invoice.Status(status).String()
	response.CancellationReason = cancellationReason.String
	response.Notes = notes.String
	response.OutstandingAmount = response.TotalAmount.Sub(response.PaidAmount)
	if response.OutstandingAmount.IsNegative() {
		response.OutstandingAmount = decimal.Zero
	}

	payments, err := h.loadPayments(ctx, query.InvoiceID())
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	response.Payments = payments

	return response, nil
}

func (h GetInvoiceQueryHandler) loadPayments(
	ctx context.Context,
	invoiceID kernel.UUID,
) ([]PaymentResponse, error) {
	payments := make([]PaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			payment_date,
			method,
			notes,
			proof_ref
		FROM payments
		WHERE invoice_id = ?
		ORDER BY payment_date
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payment PaymentResponse
		var id uuid.UUID
		var method int
		var notes, proofRef sql.NullString

		err = rows.Scan(
			&id,
			&payment.Amount,
			&payment.PaymentDate,
			&method,
			&notes,
			&proofRef,
		)
		if err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		payment.ID = paymentID
		payment.Method = invoice.PaymentMethod(method).String()
		payment.Notes = notes.String
		payment.ProofRef = proofRef.String
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
