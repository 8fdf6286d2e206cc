package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
)

// RecordPaymentCommand represents a request to append a payment to an
// invoice's ledger.
//
// Example:
//
//	cmd, err := NewRecordPaymentCommand(
//	    invoiceID, kernel.NewUUID(), kernel.NewMoneyFromInt(3_000_000),
//	    time.Now(), invoice.BankTransfer, "", "TRX-991")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRecordPaymentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errors.Is(err, errs.ErrOverpayment) etc.
//	    return err
//	}
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	invoiceID   kernel.UUID
	paymentID   kernel.UUID
	amount      kernel.Money
	paymentDate time.Time
	method      invoice.PaymentMethod
	notes       string
	proofRef    string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment. The amount
// must be strictly positive; the overpayment check happens in the handler
// against the locked invoice row.
func NewRecordPaymentCommand(
	invoiceID, paymentID kernel.UUID,
	amount kernel.Money,
	paymentDate time.Time,
	method invoice.PaymentMethod,
	notes, proofRef string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setPaymentID(paymentID),
		cmd.setAmount(amount),
		cmd.setPaymentDate(paymentDate),
		cmd.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	cmd.notes = notes
	cmd.proofRef = proofRef
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// InvoiceID returns the target invoice identifier.
func (c RecordPaymentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// PaymentID returns the unique identifier for the new ledger entry.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// PaymentDate returns when the payment was made.
func (c RecordPaymentCommand) PaymentDate() time.Time {
	return c.paymentDate
}

// Method returns the settlement channel.
func (c RecordPaymentCommand) Method() invoice.PaymentMethod {
	return c.method
}

// Notes returns the free-form notes.
func (c RecordPaymentCommand) Notes() string {
	return c.notes
}

// ProofRef returns the external proof reference, e.g. a transfer slip code.
func (c RecordPaymentCommand) ProofRef() string {
	return c.proofRef
}

func (c *RecordPaymentCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewBusinessRuleError(errs.ErrInvalidAmount,
			"payment amount must be greater than 0")
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setPaymentDate(paymentDate time.Time) error {
	if paymentDate.IsZero() {
		return errs.NewValueIsRequiredError("paymentDate")
	}

	c.paymentDate = paymentDate
	return nil
}

func (c *RecordPaymentCommand) setMethod(method invoice.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
