package joborderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobOrderRepository implements JobOrderRepository using GORM.
type GormJobOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobOrderRepository creates a new GORM job order repository.
func NewGormJobOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormJobOrderRepository {
	return &GormJobOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job order to the database.
func (r *GormJobOrderRepository) Add(ctx context.Context, aggregate *joborder.JobOrder) error {
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

// Update saves an existing job order to the database, including its
// assignment history. Assignment rows are upserted; history is append-only
// so nothing is deleted.
func (r *GormJobOrderRepository) Update(ctx context.Context, aggregate *joborder.JobOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job order by ID with its assignment history.
func (r *GormJobOrderRepository) Get(ctx context.Context, id kernel.UUID) (*joborder.JobOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves several job orders at once. Every requested identifier
// must exist; a missing one is reported as ObjectNotFound so selection
// checks cannot silently pass on dropped members.
func (r *GormJobOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*joborder.JobOrder, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []JobOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]JobOrderDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	jobOrders := make([]*joborder.JobOrder, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("jobOrder", id.String())
		}
		jo, joErr := toDomain(dto)
		if joErr != nil {
			return nil, joErr
		}
		jobOrders = append(jobOrders, jo)
	}

	return jobOrders, nil
}
