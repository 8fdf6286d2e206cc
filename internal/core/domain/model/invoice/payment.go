package invoice

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// PaymentMethod is the settlement channel of a payment.
type PaymentMethod int

const (
	// UnknownMethod represents an invalid payment method.
	UnknownMethod PaymentMethod = iota

	// Cash settlement.
	Cash

	// BankTransfer settlement.
	BankTransfer

	// Cheque settlement.
	Cheque

	// Card settlement.
	Card

	// OtherMethod covers settlement channels outside the common set.
	OtherMethod
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownMethod: "Unknown",
		Cash:          "Cash",
		BankTransfer:  "BankTransfer",
		Cheque:        "Cheque",
		Card:          "Card",
		OtherMethod:   "Other",
	}
}

// ParsePaymentMethod converts an external representation to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s && method != UnknownMethod {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the defined channels.
func (m PaymentMethod) Validate() error {
	if m < Cash || m > OtherMethod {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New(
	"Payment must be created via NewPayment or RestorePayment constructor")

// Payment is an append-only ledger entry. Once created it is immutable;
// corrections happen through compensating entries, never edits.
type Payment struct {
	id          kernel.UUID
	invoiceID   kernel.UUID
	amount      kernel.Money
	paymentDate time.Time
	method      PaymentMethod
	notes       string
	proofRef    string

	isConstructed bool
}

// NewPayment creates a validated ledger entry. The amount must be strictly
// positive; whether it fits under the invoice total is the invoice's check,
// not the payment's.
func NewPayment(
	id, invoiceID kernel.UUID,
	amount kernel.Money,
	paymentDate time.Time,
	method PaymentMethod,
	notes, proofRef string,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		invoiceID.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, errs.NewBusinessRuleError(errs.ErrInvalidAmount,
			fmt.Sprintf("payment amount %s is not greater than 0", amount))
	}
	if paymentDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("paymentDate")
	}

	return &Payment{
		id:            id,
		invoiceID:     invoiceID,
		amount:        amount,
		paymentDate:   paymentDate,
		method:        method,
		notes:         notes,
		proofRef:      proofRef,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a ledger entry from persistence.
func RestorePayment(
	id, invoiceID kernel.UUID,
	amount kernel.Money,
	paymentDate time.Time,
	method PaymentMethod,
	notes, proofRef string,
) (*Payment, error) {
	return NewPayment(id, invoiceID, amount, paymentDate, method, notes, proofRef)
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// InvoiceID returns the invoice the payment settles.
func (p *Payment) InvoiceID() kernel.UUID {
	return p.invoiceID
}

// Amount returns the settled amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// PaymentDate returns when the payment was made.
func (p *Payment) PaymentDate() time.Time {
	return p.paymentDate
}

// Method returns the settlement channel.
func (p *Payment) Method() PaymentMethod {
	return p.method
}

// Notes returns the free-form notes, if any.
func (p *Payment) Notes() string {
	return p.notes
}

// ProofRef returns the reference to a proof-of-payment document, if any.
func (p *Payment) ProofRef() string {
	return p.proofRef
}
