package invoicerepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing invoice's own row. The ledger is
// append-only and written exclusively through AddPayment, so associations
// are omitted here. Select("*") forces zero-valued columns through, which
// matters when notes are cleared.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddPayment inserts a new ledger entry. There is no update or delete
// counterpart; recorded payments are immutable.
func (r *GormInvoiceRepository) AddPayment(ctx context.Context, payment *invoice.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	dto := paymentFromDomain(payment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an invoice by ID with its full ledger, oldest entry first.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an invoice like Get but takes a row lock for the
// duration of the surrounding transaction. Concurrent payments against the
// same invoice serialize on this lock instead of both passing the
// overpayment check.
func (r *GormInvoiceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	return r.get(ctx, id, true)
}

func (r *GormInvoiceRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_date")
		})
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto InvoiceDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDueBefore retrieves invoices whose due date passed the given moment
// but whose stored status is still Pending. Only unpaid invoices can turn
// Overdue; anything with a payment is already Partial and stays there.
func (r *GormInvoiceRepository) GetAllDueBefore(ctx context.Context, moment time.Time) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_date")
		}).
		Find(&dtos, "status = ? AND due_date < ?", int(invoice.Pending), moment).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, invErr := toDomain(dto)
		if invErr != nil {
			return nil, invErr
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}
