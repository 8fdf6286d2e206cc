package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates
// and their payment ledgers.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	// The invoice must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate's own row.
	// Ledger entries are appended through AddPayment; this method never
	// touches them.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// AddPayment inserts a new ledger entry. The ledger is append-only:
	// there is no update or delete counterpart. Callers pair this with
	// Update on the owning invoice in the same transaction.
	AddPayment(ctx context.Context, payment *invoice.Payment) error

	// Get retrieves an invoice aggregate by its unique identifier, with its
	// full payment ledger, oldest entry first.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetForUpdate retrieves an invoice like Get but takes a row lock on the
	// invoice for the duration of the surrounding transaction. Payment
	// recording loads through this method so concurrent payments against
	// the same invoice serialize instead of both passing the overpayment
	// check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetAllDueBefore retrieves open invoices whose due date passed and
	// whose stored status has not caught up yet. Used by the overdue sweep.
	GetAllDueBefore(ctx context.Context, moment time.Time) ([]*invoice.Invoice, error)
}
