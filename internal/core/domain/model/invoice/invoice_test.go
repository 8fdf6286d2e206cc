package invoice_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow     = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	testDueDate = time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
)

func newTestInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
		kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
		testDueDate, testNow)
	require.NoError(t, err)
	return inv
}

func recordPayment(t *testing.T, inv *invoice.Invoice, amount int64) *invoice.Payment {
	t.Helper()
	p, err := inv.RecordPayment(
		kernel.NewUUID(), kernel.NewMoneyFromInt(amount), testNow,
		invoice.BankTransfer, "", "", testNow)
	require.NoError(t, err)
	return p
}

func TestNewInvoice(t *testing.T) {
	t.Run("computes_tax_and_total_from_percent_rate", func(t *testing.T) {
		inv := newTestInvoice(t)

		assert.True(t, inv.TaxAmount().IsEqual(kernel.NewMoneyFromInt(660_000)))
		assert.True(t, inv.TotalAmount().IsEqual(kernel.NewMoneyFromInt(6_660_000)))
		assert.True(t, inv.PaidAmount().IsZero())
		assert.Equal(t, invoice.Pending, inv.Status())
		require.NoError(t, inv.Validate())
	})

	t.Run("starts_overdue_when_due_date_already_passed", func(t *testing.T) {
		inv, err := invoice.NewInvoice(
			kernel.NewUUID(), invoice.SourceJobOrder, kernel.NewUUID(), "CUST-001",
			kernel.NewMoneyFromInt(100_000), decimal.NewFromInt(10),
			testNow.AddDate(0, 0, -1), testNow)
		require.NoError(t, err)

		assert.Equal(t, invoice.Overdue, inv.Status())
	})

	t.Run("zero_tax_rate_means_total_equals_subtotal", func(t *testing.T) {
		inv, err := invoice.NewInvoice(
			kernel.NewUUID(), invoice.SourceManifest, kernel.NewUUID(), "CUST-001",
			kernel.NewMoneyFromInt(250_000), decimal.Zero,
			testDueDate, testNow)
		require.NoError(t, err)

		assert.True(t, inv.TaxAmount().IsZero())
		assert.True(t, inv.TotalAmount().IsEqual(inv.Subtotal()))
	})

	t.Run("rejects_missing_customer", func(t *testing.T) {
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "",
			kernel.NewMoneyFromInt(100), decimal.Zero, testDueDate, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_subtotal_and_tax_rate", func(t *testing.T) {
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-001",
			kernel.NewMoneyFromInt(-100), decimal.Zero, testDueDate, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = invoice.NewInvoice(
			kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-001",
			kernel.NewMoneyFromInt(100), decimal.NewFromInt(-5), testDueDate, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_due_date", func(t *testing.T) {
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-001",
			kernel.NewMoneyFromInt(100), decimal.Zero, time.Time{}, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not_constructed_invoice_fails_validation", func(t *testing.T) {
		var inv invoice.Invoice

		require.ErrorIs(t, inv.Validate(), invoice.ErrInvoiceIsNotConstructed)
	})
}

func TestInvoiceRecordPayment(t *testing.T) {
	t.Run("partial_then_final_payment_settles_the_invoice", func(t *testing.T) {
		inv := newTestInvoice(t)

		recordPayment(t, inv, 3_000_000)
		assert.Equal(t, invoice.Partial, inv.Status())
		assert.True(t, inv.OutstandingAmount().IsEqual(kernel.NewMoneyFromInt(3_660_000)))

		recordPayment(t, inv, 3_660_000)
		assert.Equal(t, invoice.Paid, inv.Status())
		assert.True(t, inv.OutstandingAmount().IsZero())
		assert.Len(t, inv.Payments(), 2)
	})

	t.Run("rejects_overpayment", func(t *testing.T) {
		inv := newTestInvoice(t)
		recordPayment(t, inv, 3_000_000)

		_, err := inv.RecordPayment(
			kernel.NewUUID(), kernel.NewMoneyFromInt(4_000_000), testNow,
			invoice.Cash, "", "", testNow)

		require.ErrorIs(t, err, errs.ErrOverpayment)
		assert.True(t, inv.PaidAmount().IsEqual(kernel.NewMoneyFromInt(3_000_000)))
		assert.Len(t, inv.Payments(), 1)
	})

	t.Run("rejects_non_positive_amounts", func(t *testing.T) {
		inv := newTestInvoice(t)

		_, err := inv.RecordPayment(
			kernel.NewUUID(), kernel.ZeroMoney(), testNow, invoice.Cash, "", "", testNow)
		require.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = inv.RecordPayment(
			kernel.NewUUID(), kernel.NewMoneyFromInt(-500), testNow, invoice.Cash, "", "", testNow)
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("paid_invoice_accepts_no_further_payments", func(t *testing.T) {
		inv := newTestInvoice(t)
		recordPayment(t, inv, 6_660_000)
		require.Equal(t, invoice.Paid, inv.Status())

		_, err := inv.RecordPayment(
			kernel.NewUUID(), kernel.NewMoneyFromInt(1), testNow, invoice.Cash, "", "", testNow)

		require.ErrorIs(t, err, errs.ErrInvoiceNotPayable)
	})

	t.Run("cancelled_invoice_accepts_no_payments", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Cancel("billing dispute"))

		_, err := inv.RecordPayment(
			kernel.NewUUID(), kernel.NewMoneyFromInt(100), testNow, invoice.Cash, "", "", testNow)

		require.ErrorIs(t, err, errs.ErrInvoiceNotPayable)
	})

	t.Run("payment_on_overdue_invoice_moves_it_to_partial", func(t *testing.T) {
		inv := newTestInvoice(t)
		late := testDueDate.AddDate(0, 0, 5)
		require.True(t, inv.RefreshStatus(late))
		require.Equal(t, invoice.Overdue, inv.Status())

		_, err := inv.RecordPayment(
			kernel.NewUUID(), kernel.NewMoneyFromInt(1_000_000), late,
			invoice.Cheque, "", "", late)
		require.NoError(t, err)

		assert.Equal(t, invoice.Partial, inv.Status())
	})
}

func TestInvoiceEditLocking(t *testing.T) {
	t.Run("amounts_editable_before_any_payment", func(t *testing.T) {
		inv := newTestInvoice(t)

		err := inv.UpdateAmounts(kernel.NewMoneyFromInt(8_000_000), decimal.NewFromInt(10), testNow)
		require.NoError(t, err)

		assert.True(t, inv.TotalAmount().IsEqual(kernel.NewMoneyFromInt(8_800_000)))
	})

	t.Run("amounts_frozen_after_first_payment", func(t *testing.T) {
		inv := newTestInvoice(t)
		recordPayment(t, inv, 1_000_000)

		err := inv.UpdateAmounts(kernel.NewMoneyFromInt(8_000_000), decimal.NewFromInt(10), testNow)

		require.ErrorIs(t, err, errs.ErrEditLocked)
		assert.True(t, inv.TotalAmount().IsEqual(kernel.NewMoneyFromInt(6_660_000)))
	})

	t.Run("due_date_and_notes_stay_editable_after_payments", func(t *testing.T) {
		inv := newTestInvoice(t)
		recordPayment(t, inv, 1_000_000)

		require.NoError(t, inv.UpdateDueDate(testDueDate.AddDate(0, 1, 0), testNow))
		require.NoError(t, inv.UpdateNotes("extended per account manager"))

		assert.Equal(t, testDueDate.AddDate(0, 1, 0), inv.DueDate())
		assert.Equal(t, "extended per account manager", inv.Notes())
	})

	t.Run("pushing_due_date_forward_clears_overdue", func(t *testing.T) {
		inv := newTestInvoice(t)
		late := testDueDate.AddDate(0, 0, 3)
		inv.RefreshStatus(late)
		require.Equal(t, invoice.Overdue, inv.Status())

		require.NoError(t, inv.UpdateDueDate(late.AddDate(0, 0, 30), late))

		assert.Equal(t, invoice.Pending, inv.Status())
	})

	t.Run("cancelled_invoice_rejects_all_edits", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Cancel("duplicate billing"))

		require.ErrorIs(t,
			inv.UpdateAmounts(kernel.NewMoneyFromInt(1), decimal.Zero, testNow), errs.ErrEditLocked)
		require.ErrorIs(t,
			inv.UpdateDueDate(testDueDate, testNow), errs.ErrEditLocked)
		require.ErrorIs(t, inv.UpdateNotes("x"), errs.ErrEditLocked)
	})
}

func TestInvoiceCancel(t *testing.T) {
	t.Run("cancels_with_reason", func(t *testing.T) {
		inv := newTestInvoice(t)

		require.NoError(t, inv.Cancel("customer withdrew the order"))

		assert.Equal(t, invoice.Cancelled, inv.Status())
		assert.Equal(t, "customer withdrew the order", inv.CancellationReason())
	})

	t.Run("requires_a_reason", func(t *testing.T) {
		inv := newTestInvoice(t)

		require.ErrorIs(t, inv.Cancel(""), errs.ErrValueIsRequired)
	})

	t.Run("paid_invoice_cannot_be_cancelled", func(t *testing.T) {
		inv := newTestInvoice(t)
		recordPayment(t, inv, 6_660_000)

		require.ErrorIs(t, inv.Cancel("too late"), errs.ErrCancellationNotAllowed)
	})

	t.Run("partially_paid_invoice_can_be_cancelled", func(t *testing.T) {
		inv := newTestInvoice(t)
		recordPayment(t, inv, 1_000_000)

		require.NoError(t, inv.Cancel("written off"))
		assert.Equal(t, invoice.Cancelled, inv.Status())
	})

	t.Run("double_cancel_is_rejected", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Cancel("first"))

		require.ErrorIs(t, inv.Cancel("second"), errs.ErrInvalidTransition)
	})
}

func TestRestoreInvoice(t *testing.T) {
	t.Run("restores_ledger_and_recomputes_amounts", func(t *testing.T) {
		id := kernel.NewUUID()
		p1, err := invoice.RestorePayment(
			kernel.NewUUID(), id, kernel.NewMoneyFromInt(2_000_000), testNow,
			invoice.BankTransfer, "", "TRX-991")
		require.NoError(t, err)

		inv, err := invoice.RestoreInvoice(
			id, invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
			kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
			kernel.NewMoneyFromInt(2_000_000), testDueDate, invoice.Partial,
			"", "", []*invoice.Payment{p1})
		require.NoError(t, err)

		assert.True(t, inv.TotalAmount().IsEqual(kernel.NewMoneyFromInt(6_660_000)))
		assert.Len(t, inv.Payments(), 1)
		require.NoError(t, inv.Validate())
	})

	t.Run("rejects_paid_amount_that_disagrees_with_ledger", func(t *testing.T) {
		id := kernel.NewUUID()
		p1, err := invoice.RestorePayment(
			kernel.NewUUID(), id, kernel.NewMoneyFromInt(2_000_000), testNow,
			invoice.BankTransfer, "", "")
		require.NoError(t, err)

		_, err = invoice.RestoreInvoice(
			id, invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
			kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
			kernel.NewMoneyFromInt(5_000_000), testDueDate, invoice.Partial,
			"", "", []*invoice.Payment{p1})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_payment_belonging_to_another_invoice", func(t *testing.T) {
		p1, err := invoice.RestorePayment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewMoneyFromInt(100), testNow,
			invoice.Cash, "", "")
		require.NoError(t, err)

		_, err = invoice.RestoreInvoice(
			kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
			kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
			kernel.NewMoneyFromInt(100), testDueDate, invoice.Partial,
			"", "", []*invoice.Payment{p1})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancelled_requires_reason", func(t *testing.T) {
		_, err := invoice.RestoreInvoice(
			kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
			kernel.NewMoneyFromInt(100), decimal.Zero,
			kernel.ZeroMoney(), testDueDate, invoice.Cancelled,
			"", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeriveStatus(t *testing.T) {
	total := kernel.NewMoneyFromInt(1_000)

	tests := []struct {
		name      string
		cancelled bool
		paid      kernel.Money
		dueDate   time.Time
		want      invoice.Status
	}{
		{"cancelled_wins_over_everything", true, total, testDueDate, invoice.Cancelled},
		{"fully_paid", false, total, testDueDate, invoice.Paid},
		{"paid_beats_overdue", false, total, testNow.AddDate(0, 0, -10), invoice.Paid},
		{"partially_paid", false, kernel.NewMoneyFromInt(400), testDueDate, invoice.Partial},
		{"partial_beats_overdue", false, kernel.NewMoneyFromInt(400), testNow.AddDate(0, 0, -10), invoice.Partial},
		{"unpaid_past_due", false, kernel.ZeroMoney(), testNow.AddDate(0, 0, -1), invoice.Overdue},
		{"unpaid_before_due", false, kernel.ZeroMoney(), testDueDate, invoice.Pending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.DeriveStatus(tt.cancelled, tt.paid, total, tt.dueDate, testNow)
			assert.Equal(t, tt.want, got)
		})
	}
}
