package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
)

// CreateInvoiceCommand represents a request to open a billing record against
// a job order, delivery order, or manifest.
//
// Example:
//
//	cmd, err := NewCreateInvoiceCommand(
//	    kernel.NewUUID(), invoice.SourceDeliveryOrder, doID, "CUST-042",
//	    kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11), dueDate)
//	if err != nil {
//	    return err
//	}
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID  kernel.UUID
	sourceType invoice.SourceType
	sourceID   kernel.UUID
	customerID string
	subtotal   kernel.Money
	taxRate    decimal.Decimal
	dueDate    time.Time

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to open an invoice.
func NewCreateInvoiceCommand(
	invoiceID kernel.UUID,
	sourceType invoice.SourceType,
	sourceID kernel.UUID,
	customerID string,
	subtotal kernel.Money,
	taxRate decimal.Decimal,
	dueDate time.Time,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setSource(sourceType, sourceID),
		cmd.setCustomerID(customerID),
		cmd.setAmounts(subtotal, taxRate),
		cmd.setDueDate(dueDate),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the unique identifier for the invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// SourceType returns what the invoice bills for.
func (c CreateInvoiceCommand) SourceType() invoice.SourceType {
	return c.sourceType
}

// SourceID returns the billed entity's identifier.
func (c CreateInvoiceCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// CustomerID returns the billed customer's code.
func (c CreateInvoiceCommand) CustomerID() string {
	return c.customerID
}

// Subtotal returns the pre-tax amount.
func (c CreateInvoiceCommand) Subtotal() kernel.Money {
	return c.subtotal
}

// TaxRate returns the percent tax rate.
func (c CreateInvoiceCommand) TaxRate() decimal.Decimal {
	return c.taxRate
}

// DueDate returns the settlement deadline.
func (c CreateInvoiceCommand) DueDate() time.Time {
	return c.dueDate
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setSource(sourceType invoice.SourceType, sourceID kernel.UUID) error {
	if err := sourceType.Validate(); err != nil {
		return err
	}
	if err := sourceID.Validate(); err != nil {
		return err
	}

	c.sourceType = sourceType
	c.sourceID = sourceID
	return nil
}

func (c *CreateInvoiceCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateInvoiceCommand) setAmounts(subtotal kernel.Money, taxRate decimal.Decimal) error {
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

func (c *CreateInvoiceCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}

	c.dueDate = dueDate
	return nil
}
