package deliveryorderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryOrderRepository implements DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryOrderRepository creates a new GORM delivery order repository.
func NewGormDeliveryOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery order to the database.
func (r *GormDeliveryOrderRepository) Add(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error {
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

// Update saves an existing delivery order to the database.
func (r *GormDeliveryOrderRepository) Update(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery order by ID.
func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
