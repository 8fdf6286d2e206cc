// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
	)
)

// GetInvoiceQuery retrieves a single invoice with its full payment ledger.
//
// Example:
//
//	query, err := NewGetInvoiceQuery(invoiceID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetInvoiceQueryHandler(db)
//	inv, err := handler.Handle(ctx, query)
type GetInvoiceQuery struct {
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query to retrieve one invoice by identifier.
func NewGetInvoiceQuery(invoiceID kernel.UUID) (GetInvoiceQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}

	return GetInvoiceQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceID returns the requested invoice identifier.
func (q GetInvoiceQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}

// PaymentResponse represents one ledger entry in the read model.
type PaymentResponse struct {
	ID          kernel.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      string
	Notes       string
	ProofRef    string
}

// GetInvoiceQueryResponse represents an invoice with its ledger in the read
// model. Amounts are raw decimals; rendering is the caller's concern.
type GetInvoiceQueryResponse struct {
	ID                 kernel.UUID
	SourceType         string
	SourceID           kernel.UUID
	CustomerID         string
	Subtotal           decimal.Decimal
	TaxRate            decimal.Decimal
	TaxAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
	PaidAmount         decimal.Decimal
	OutstandingAmount  decimal.Decimal
	DueDate            time.Time
	Status             string
	CancellationReason string
	Notes              string
	Payments           []PaymentResponse
}
