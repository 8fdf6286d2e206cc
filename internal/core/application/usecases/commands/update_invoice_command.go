package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateInvoiceCommandIsNotConstructed = errors.New(
		"UpdateInvoiceCommand must be created via NewUpdateInvoiceCommand constructor",
	)
	ErrNoInvoiceChanges = errors.New("update invoice command carries no changes")
)

// UpdateInvoiceCommand represents a request to edit an open invoice. All
// fields are optional, but at least one must be present. Subtotal and tax
// rate travel together; the aggregate rejects amount edits once any payment
// has landed.
type UpdateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	subtotal  *kernel.Money
	taxRate   *decimal.Decimal
	dueDate   *time.Time
	notes     *string

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceCommand creates a command to edit an invoice. Nil fields
// are left untouched by the handler.
func NewUpdateInvoiceCommand(
	invoiceID kernel.UUID,
	subtotal *kernel.Money,
	taxRate *decimal.Decimal,
	dueDate *time.Time,
	notes *string,
) (UpdateInvoiceCommand, error) {
	cmd := UpdateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setAmounts(subtotal, taxRate),
		cmd.setDueDate(dueDate),
	); err != nil {
		return UpdateInvoiceCommand{}, err
	}

	cmd.notes = notes
	if cmd.subtotal == nil && cmd.dueDate == nil && cmd.notes == nil {
		return UpdateInvoiceCommand{}, ErrNoInvoiceChanges
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the target invoice identifier.
func (c UpdateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Subtotal returns the new pre-tax amount, or nil when unchanged.
func (c UpdateInvoiceCommand) Subtotal() *kernel.Money {
	return c.subtotal
}

// TaxRate returns the new percent tax rate, or nil when unchanged.
func (c UpdateInvoiceCommand) TaxRate() *decimal.Decimal {
	return c.taxRate
}

// DueDate returns the new settlement deadline, or nil when unchanged.
func (c UpdateInvoiceCommand) DueDate() *time.Time {
	return c.dueDate
}

// Notes returns the new notes, or nil when unchanged.
func (c UpdateInvoiceCommand) Notes() *string {
	return c.notes
}

func (c *UpdateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *UpdateInvoiceCommand) setAmounts(subtotal *kernel.Money, taxRate *decimal.Decimal) error {
	if (subtotal == nil) != (taxRate == nil) {
		return errs.NewValueIsRequiredError("subtotal and taxRate must be set together")
	}
	if subtotal == nil {
		return nil
	}

	if subtotal.IsNegative() {
		return errs.NewValueIsInvalidError("subtotal")
	}
	if taxRate.IsNegative() {
		return errs.NewValueIsInvalidError("taxRate")
	}

	c.subtotal = subtotal
	c.taxRate = taxRate
	return nil
}

func (c *UpdateInvoiceCommand) setDueDate(dueDate *time.Time) error {
	if dueDate == nil {
		return nil
	}
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}

	c.dueDate = dueDate
	return nil
}
