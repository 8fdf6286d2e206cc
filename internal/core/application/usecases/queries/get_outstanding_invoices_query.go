package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOutstandingInvoicesQueryIsNotConstructed = errors.New(
		"GetOutstandingInvoicesQuery must be created via NewGetOutstandingInvoicesQuery constructor",
	)
)

// GetOutstandingInvoicesQuery retrieves all invoices that still have money
// owed on them: Pending, Partial, and Overdue. Overdue is re-derived against
// the query's reference time, so the view is correct even when the periodic
// sweep has not yet persisted the transition.
type GetOutstandingInvoicesQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOutstandingInvoicesQuery creates a query for open invoices as of the
// given moment. The moment is usually time.Now().UTC().
func NewGetOutstandingInvoicesQuery(asOf time.Time) (GetOutstandingInvoicesQuery, error) {
	if asOf.IsZero() {
		return GetOutstandingInvoicesQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOutstandingInvoicesQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOutstandingInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetOutstandingInvoicesQueryIsNotConstructed)
}

// AsOf returns the reference time against which due dates are evaluated.
func (q GetOutstandingInvoicesQuery) AsOf() time.Time {
	return q.asOf
}

// GetOutstandingInvoicesQueryResponse represents one open invoice in the
// read model.
type GetOutstandingInvoicesQueryResponse struct {
	ID                kernel.UUID
	SourceType        string
	SourceID          kernel.UUID
	CustomerID        string
	TotalAmount       decimal.Decimal
	PaidAmount        decimal.Decimal
	OutstandingAmount decimal.Decimal
	DueDate           time.Time
	Status            string
}
