package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCancelInvoiceCommandIsNotConstructed = errors.New(
		"CancelInvoiceCommand must be created via NewCancelInvoiceCommand constructor",
	)
)

// CancelInvoiceCommand represents a request to withdraw an invoice. A
// reason is mandatory; a fully paid invoice cannot be cancelled.
type CancelInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelInvoiceCommand creates a command to cancel an invoice.
func NewCancelInvoiceCommand(invoiceID kernel.UUID, reason string) (CancelInvoiceCommand, error) {
	cmd := CancelInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setReason(reason),
	); err != nil {
		return CancelInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCancelInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the target invoice identifier.
func (c CancelInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Reason returns the cancellation reason.
func (c CancelInvoiceCommand) Reason() string {
	return c.reason
}

func (c *CancelInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *CancelInvoiceCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
