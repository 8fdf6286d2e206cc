package invoice

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SourceType identifies what an invoice bills for.
type SourceType int

const (
	// UnknownSource represents an invalid source type.
	UnknownSource SourceType = iota

	// SourceJobOrder bills a job order directly.
	SourceJobOrder

	// SourceDeliveryOrder bills a delivery order. The typical case.
	SourceDeliveryOrder

	// SourceManifest bills a whole manifest trip.
	SourceManifest
)

// ParseSourceType converts the wire codes "JO", "DO", and "MF".
func ParseSourceType(s string) (SourceType, error) {
	switch s {
	case "JO":
		return SourceJobOrder, nil
	case "DO":
		return SourceDeliveryOrder, nil
	case "MF":
		return SourceManifest, nil
	default:
		return UnknownSource, errs.NewValueIsInvalidErrorWithCause("sourceType",
			fmt.Errorf("%q is not a valid invoice source type", s))
	}
}

// Validate checks that the SourceType is one of the defined kinds.
func (t SourceType) Validate() error {
	if t < SourceJobOrder || t > SourceManifest {
		return errs.NewValueIsInvalidErrorWithCause("sourceType",
			fmt.Errorf("%d is not a valid invoice source type", t))
	}
	return nil
}

// String returns "JO", "DO", "MF", or "Unknown".
func (t SourceType) String() string {
	switch t {
	case SourceJobOrder:
		return "JO"
	case SourceDeliveryOrder:
		return "DO"
	case SourceManifest:
		return "MF"
	default:
		return "Unknown"
	}
}

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New(
	"Invoice must be created via NewInvoice or RestoreInvoice constructor")

// Invoice is the aggregate root for a billing record and its payment ledger.
//
// Invariants:
//   - taxAmount = subtotal * taxRate / 100; totalAmount = subtotal + taxAmount
//   - paidAmount equals the sum of the payment ledger at all times
//   - paidAmount never exceeds totalAmount; overpayments are rejected
//   - subtotal and taxRate are frozen once any payment lands
//   - status always equals DeriveStatus over the current ledger state
type Invoice struct {
	id                 kernel.UUID
	sourceType         SourceType
	sourceID           kernel.UUID
	customerID         string
	subtotal           kernel.Money
	taxRate            decimal.Decimal
	taxAmount          kernel.Money
	totalAmount        kernel.Money
	paidAmount         kernel.Money
	dueDate            time.Time
	status             Status
	cancellationReason string
	notes              string
	payments           []*Payment

	isConstructed bool
}

// NewInvoice creates an invoice with a fresh ledger. Tax and total are
// computed from the subtotal and percent tax rate; the status is derived
// immediately, so an invoice created past its due date starts Overdue.
//
// Example:
//
//	inv, err := invoice.NewInvoice(
//	    kernel.NewUUID(), invoice.SourceDeliveryOrder, doID, "CUST-042",
//	    kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
//	    dueDate, time.Now())
func NewInvoice(
	id kernel.UUID,
	sourceType SourceType,
	sourceID kernel.UUID,
	customerID string,
	subtotal kernel.Money,
	taxRate decimal.Decimal,
	dueDate time.Time,
	now time.Time,
) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		sourceType.Validate(),
		sourceID.Validate(),
	); err != nil {
		return nil, err
	}

	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if subtotal.IsNegative() {
		return nil, errs.NewValueIsInvalidError("subtotal")
	}
	if taxRate.IsNegative() {
		return nil, errs.NewValueIsInvalidError("taxRate")
	}
	if dueDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("dueDate")
	}

	inv := &Invoice{
		id:            id,
		sourceType:    sourceType,
		sourceID:      sourceID,
		customerID:    customerID,
		subtotal:      subtotal,
		taxRate:       taxRate,
		paidAmount:    kernel.ZeroMoney(),
		dueDate:       dueDate,
		isConstructed: true,
	}
	inv.recomputeAmounts()
	inv.recomputeStatus(now)
	return inv, nil
}

// RestoreInvoice reconstructs an invoice and its ledger from persistence.
// The stored paid amount must equal the sum of the payment entries; a
// mismatch means the ledger drifted and the row is rejected rather than
// silently repaired.
func RestoreInvoice(
	id kernel.UUID,
	sourceType SourceType,
	sourceID kernel.UUID,
	customerID string,
	subtotal kernel.Money,
	taxRate decimal.Decimal,
	paidAmount kernel.Money,
	dueDate time.Time,
	status Status,
	cancellationReason string,
	notes string,
	payments []*Payment,
) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		sourceType.Validate(),
		sourceID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if status == Cancelled && cancellationReason == "" {
		return nil, errs.NewValueIsRequiredError("cancellationReason")
	}

	ledgerSum := kernel.ZeroMoney()
	for _, p := range payments {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.InvoiceID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("payments: entry belongs to another invoice")
		}
		ledgerSum = ledgerSum.Add(p.Amount())
	}
	if !ledgerSum.IsEqual(paidAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("paidAmount",
			fmt.Errorf("ledger sum %s does not match stored paid amount %s", ledgerSum, paidAmount))
	}

	inv := &Invoice{
		id:                 id,
		sourceType:         sourceType,
		sourceID:           sourceID,
		customerID:         customerID,
		subtotal:           subtotal,
		taxRate:            taxRate,
		paidAmount:         paidAmount,
		dueDate:            dueDate,
		status:             status,
		cancellationReason: cancellationReason,
		notes:              notes,
		payments:           payments,
		isConstructed:      true,
	}
	inv.recomputeAmounts()
	return inv, nil
}

// Validate ensures the Invoice was created through a constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by identifier.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// SourceType returns what the invoice bills for.
func (i *Invoice) SourceType() SourceType {
	return i.sourceType
}

// SourceID returns the billed entity's identifier.
func (i *Invoice) SourceID() kernel.UUID {
	return i.sourceID
}

// CustomerID returns the billed customer's code.
func (i *Invoice) CustomerID() string {
	return i.customerID
}

// Subtotal returns the pre-tax amount.
func (i *Invoice) Subtotal() kernel.Money {
	return i.subtotal
}

// TaxRate returns the percent tax rate.
func (i *Invoice) TaxRate() decimal.Decimal {
	return i.taxRate
}

// TaxAmount returns subtotal * taxRate / 100.
func (i *Invoice) TaxAmount() kernel.Money {
	return i.taxAmount
}

// TotalAmount returns subtotal + taxAmount.
func (i *Invoice) TotalAmount() kernel.Money {
	return i.totalAmount
}

// PaidAmount returns the sum of the payment ledger.
func (i *Invoice) PaidAmount() kernel.Money {
	return i.paidAmount
}

// OutstandingAmount returns totalAmount - paidAmount.
func (i *Invoice) OutstandingAmount() kernel.Money {
	return i.totalAmount.Sub(i.paidAmount)
}

// DueDate returns the settlement deadline.
func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

// Status returns the stored billing status.
func (i *Invoice) Status() Status {
	return i.status
}

// CancellationReason returns the reason recorded on cancellation, or "".
func (i *Invoice) CancellationReason() string {
	return i.cancellationReason
}

// Notes returns the free-form notes.
func (i *Invoice) Notes() string {
	return i.notes
}

// Payments returns the ledger entries, oldest first.
func (i *Invoice) Payments() []*Payment {
	return i.payments
}

// DeriveStatus evaluates the derivation rule against the current ledger
// state without mutating the invoice. The stored status may lag behind only
// in the time-dependent Overdue case; every mutation path recomputes it.
func (i *Invoice) DeriveStatus(now time.Time) Status {
	return DeriveStatus(i.status == Cancelled, i.paidAmount, i.totalAmount, i.dueDate, now)
}

// RefreshStatus recomputes and stores the derived status. Used by the
// overdue sweep so that queries over the stored column stay fresh.
// Returns true when the stored value changed.
func (i *Invoice) RefreshStatus(now time.Time) bool {
	derived := i.DeriveStatus(now)
	if derived == i.status {
		return false
	}
	i.status = derived
	return true
}

// RecordPayment validates and appends a ledger entry, then recomputes the
// paid amount and status. The append and recompute must be persisted in one
// transaction; the aggregate guarantees their consistency in memory.
func (i *Invoice) RecordPayment(
	paymentID kernel.UUID,
	amount kernel.Money,
	paymentDate time.Time,
	method PaymentMethod,
	notes, proofRef string,
	now time.Time,
) (*Payment, error) {
	if i.status == Cancelled || i.status == Paid {
		return nil, errs.NewBusinessRuleError(errs.ErrInvoiceNotPayable,
			fmt.Sprintf("invoice is %s and accepts no further payments", i.status))
	}
	if !amount.IsPositive() {
		return nil, errs.NewBusinessRuleError(errs.ErrInvalidAmount,
			fmt.Sprintf("payment amount %s is not greater than 0", amount))
	}
	if i.paidAmount.Add(amount).GreaterThan(i.totalAmount) {
		return nil, errs.NewBusinessRuleError(errs.ErrOverpayment,
			fmt.Sprintf("paying %s on top of %s would exceed the total %s",
				amount, i.paidAmount, i.totalAmount))
	}

	payment, err := NewPayment(paymentID, i.id, amount, paymentDate, method, notes, proofRef)
	if err != nil {
		return nil, err
	}

	i.payments = append(i.payments, payment)
	i.paidAmount = i.paidAmount.Add(amount)
	i.recomputeStatus(now)
	return payment, nil
}

// UpdateAmounts replaces subtotal and tax rate and recomputes the derived
// amounts. Line items and tax rate are frozen the moment any payment lands;
// edits after that fail with an EditLocked kind outright.
func (i *Invoice) UpdateAmounts(newSubtotal kernel.Money, newTaxRate decimal.Decimal, now time.Time) error {
	if i.status == Cancelled {
		return errs.NewBusinessRuleError(errs.ErrEditLocked, "invoice is cancelled")
	}
	if i.paidAmount.IsPositive() {
		return errs.NewBusinessRuleError(errs.ErrEditLocked,
			"amounts are frozen once a payment has been recorded")
	}
	if newSubtotal.IsNegative() {
		return errs.NewValueIsInvalidError("subtotal")
	}
	if newTaxRate.IsNegative() {
		return errs.NewValueIsInvalidError("taxRate")
	}

	i.subtotal = newSubtotal
	i.taxRate = newTaxRate
	i.recomputeAmounts()
	i.recomputeStatus(now)
	return nil
}

// UpdateDueDate moves the settlement deadline. Allowed while the invoice is
// open; the status is re-derived, so pushing the date forward clears an
// Overdue status.
func (i *Invoice) UpdateDueDate(dueDate time.Time, now time.Time) error {
	if i.status == Cancelled {
		return errs.NewBusinessRuleError(errs.ErrEditLocked, "invoice is cancelled")
	}
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}

	i.dueDate = dueDate
	i.recomputeStatus(now)
	return nil
}

// UpdateNotes replaces the free-form notes. Notes stay editable after
// payments land; a cancelled invoice accepts no edits at all.
func (i *Invoice) UpdateNotes(notes string) error {
	if i.status == Cancelled {
		return errs.NewBusinessRuleError(errs.ErrEditLocked, "invoice is cancelled")
	}

	i.notes = notes
	return nil
}

// Cancel withdraws the invoice with a mandatory reason. A fully paid invoice
// cannot be cancelled. Cancellation is terminal: no further payments or
// edits are accepted.
func (i *Invoice) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}
	if i.status == Paid {
		return errs.NewBusinessRuleError(errs.ErrCancellationNotAllowed,
			"a fully paid invoice cannot be cancelled")
	}
	if i.status == Cancelled {
		return errs.NewBusinessRuleError(errs.ErrInvalidTransition,
			"invoice is already cancelled")
	}

	i.status = Cancelled
	i.cancellationReason = reason
	return nil
}

func (i *Invoice) recomputeAmounts() {
	i.taxAmount = i.subtotal.ApplyTaxRate(i.taxRate)
	i.totalAmount = i.subtotal.Add(i.taxAmount)
}

func (i *Invoice) recomputeStatus(now time.Time) {
	i.status = DeriveStatus(i.status == Cancelled, i.paidAmount, i.totalAmount, i.dueDate, now)
}
