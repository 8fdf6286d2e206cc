// Package invoice contains the Invoice aggregate and its append-only Payment
// ledger. The invoice computes subtotal/tax/total amounts with exact decimal
// arithmetic, accumulates payments, and derives its status from ledger state.
//
// The core consistency invariant: the sum of all payments for an invoice
// equals that invoice's paid amount at all times, and the paid amount never
// exceeds the total. Overpayments are rejected at entry. Once any payment
// lands, subtotal and tax rate are frozen; only notes and due date remain
// editable.
//
// Status is a derived view of the ledger, recomputed after every mutation:
// Cancelled is sticky; otherwise Paid when fully covered, Partial when any
// payment exists, Overdue when the due date has passed, Pending otherwise.
// Overdue is not sticky; a due-date reset or a covering payment moves the
// status accordingly.
package invoice
