// Package claimrepo persists source coverage claims. The unique index on
// (source_type, source_id, job_order_id) is the concurrency arbiter: two
// delivery orders racing to cover the same job order cannot both insert.
package claimrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceClaimDTO represents one coverage claim row.
type SourceClaimDTO struct {
	SourceType      int       `gorm:"type:int;not null;uniqueIndex:idx_source_claims_coverage"`
	SourceID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_source_claims_coverage"`
	JobOrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_source_claims_coverage"`
	DeliveryOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for claim rows.
// Overrides GORM's default naming convention to use "source_claims".
func (SourceClaimDTO) TableName() string {
	return "source_claims"
}

// GormSourceClaimRepository implements SourceClaimRepository using GORM.
// Relies on the gorm postgres driver's error translation to recognize
// unique violations, so the connection must be opened with TranslateError
// enabled.
type GormSourceClaimRepository struct {
	db *gorm.DB
}

// NewGormSourceClaimRepository creates a new GORM source claim repository.
func NewGormSourceClaimRepository(db *gorm.DB) *GormSourceClaimRepository {
	return &GormSourceClaimRepository{db: db}
}

// Claim records that the delivery order consumes the source's covered job
// order. A unique violation means another live delivery order already holds
// the claim and surfaces as an AlreadyClaimed business rule error.
func (r *GormSourceClaimRepository) Claim(
	ctx context.Context,
	source deliveryorder.Source,
	deliveryOrderID kernel.UUID,
) error {
	if err := errors.Join(source.Validate(), deliveryOrderID.Validate()); err != nil {
		return err
	}

	dto := SourceClaimDTO{
		SourceType:      int(source.Type()),
		SourceID:        source.ID().Bytes(),
		JobOrderID:      source.CoveredJobOrderID().Bytes(),
		DeliveryOrderID: deliveryOrderID.Bytes(),
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessRuleErrorWithCause(errs.ErrAlreadyClaimed,
				fmt.Sprintf("job order %s is already covered by a live delivery order",
					source.CoveredJobOrderID()), err)
		}
		return err
	}

	return nil
}

// Release frees every claim held by the delivery order. Releasing a
// delivery order that holds no claims is a no-op.
func (r *GormSourceClaimRepository) Release(ctx context.Context, deliveryOrderID kernel.UUID) error {
	if err := deliveryOrderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&SourceClaimDTO{}, "delivery_order_id = ?", deliveryOrderID.Bytes()).Error
}
