// Package invoicerepo provides data transfer objects and mapping functions for invoice persistence.
// The payment ledger is stored as append-only child rows; the invoice row
// carries the derived amounts so the sweep and read queries never need to
// aggregate the ledger.
package invoicerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice aggregates.
type InvoiceDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SourceType         int             `gorm:"type:int;not null"`
	SourceID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID         string          `gorm:"type:varchar(255);not null;index"`
	Subtotal           decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxRate            decimal.Decimal `gorm:"type:numeric(8,4);not null"`
	TaxAmount          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaidAmount         decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	DueDate            time.Time       `gorm:"type:timestamptz;not null;index"`
	Status             int             `gorm:"type:int;not null;index"`
	CancellationReason string          `gorm:"type:text"`
	Notes              string          `gorm:"type:text"`
	Payments           []PaymentDTO    `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoice entities.
// Overrides GORM's default naming convention to use "invoices" instead of "invoice_dtos".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// PaymentDTO represents one ledger entry row.
type PaymentDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaymentDate time.Time       `gorm:"type:timestamptz;not null"`
	Method      int             `gorm:"type:int;not null"`
	Notes       string          `gorm:"type:text"`
	ProofRef    string          `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for payment entities.
// Overrides GORM's default naming convention to use "payments" instead of "payment_dtos".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts an invoice domain aggregate to its database
// representation. The ledger is not included: payment rows are inserted
// individually through AddPayment and never rewritten.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:                 aggregate.ID().Bytes(),
		SourceType:         int(aggregate.SourceType()),
		SourceID:           aggregate.SourceID().Bytes(),
		CustomerID:         aggregate.CustomerID(),
		Subtotal:           aggregate.Subtotal().Decimal(),
		TaxRate:            aggregate.TaxRate(),
		TaxAmount:          aggregate.TaxAmount().Decimal(),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		PaidAmount:         aggregate.PaidAmount().Decimal(),
		DueDate:            aggregate.DueDate(),
		Status:             int(aggregate.Status()),
		CancellationReason: aggregate.CancellationReason(),
		Notes:              aggregate.Notes(),
	}
}

// paymentFromDomain converts a ledger entry to its database representation.
func paymentFromDomain(payment *invoice.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          payment.ID().Bytes(),
		InvoiceID:   payment.InvoiceID().Bytes(),
		Amount:      payment.Amount().Decimal(),
		PaymentDate: payment.PaymentDate(),
		Method:      int(payment.Method()),
		Notes:       payment.Notes(),
		ProofRef:    payment.ProofRef(),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
// Reconstructs the complete aggregate including its ledger using
// RestoreInvoice, which verifies the stored paid amount against the
// ledger sum.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sourceID, err := kernel.UUIDFromBytes(dto.SourceID[:])
	if err != nil {
		return nil, err
	}

	payments := make([]*invoice.Payment, 0, len(dto.Payments))
	for _, pDto := range dto.Payments {
		p, pErr := paymentToDomain(pDto)
		if pErr != nil {
			return nil, pErr
		}
		payments = append(payments, p)
	}

	return invoice.RestoreInvoice(
		id,
		invoice.SourceType(dto.SourceType),
		sourceID,
		dto.CustomerID,
		kernel.NewMoney(dto.Subtotal),
		dto.TaxRate,
		kernel.NewMoney(dto.PaidAmount),
		dto.DueDate,
		invoice.Status(dto.Status),
		dto.CancellationReason,
		dto.Notes,
		payments,
	)
}

// paymentToDomain converts a payment DTO to a domain ledger entry.
func paymentToDomain(dto PaymentDTO) (*invoice.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestorePayment(
		id,
		invoiceID,
		kernel.NewMoney(dto.Amount),
		dto.PaymentDate,
		invoice.PaymentMethod(dto.Method),
		dto.Notes,
		dto.ProofRef,
	)
}
