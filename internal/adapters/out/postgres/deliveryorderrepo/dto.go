// Package deliveryorderrepo provides data transfer objects and mapping functions for delivery order persistence.
package deliveryorderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryOrderDTO represents the database structure for persisting delivery
// order aggregates. The covered job order is denormalized onto the row so a
// manifest-sourced delivery order restores its selected constituent without
// loading the manifest.
type DeliveryOrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SourceType         int        `gorm:"type:int;not null"`
	SourceID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	CoveredJobOrderID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID           string     `gorm:"type:varchar(255);not null"`
	VehicleID          string     `gorm:"type:varchar(255);not null"`
	TransportLocked    bool       `gorm:"type:boolean;not null"`
	Status             int        `gorm:"type:int;not null"`
	Priority           int        `gorm:"type:int;not null"`
	Temperature        string     `gorm:"type:varchar(255)"`
	DODate             time.Time  `gorm:"column:do_date;type:timestamptz;not null"`
	DepartureDate      *time.Time `gorm:"type:timestamptz"`
	ETA                *time.Time `gorm:"column:eta;type:timestamptz"`
	DeliveredDate      *time.Time `gorm:"type:timestamptz"`
	CancellationReason string     `gorm:"type:text"`
}

// TableName specifies the database table name for delivery order entities.
// Overrides GORM's default naming convention to use "delivery_orders".
func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

// fromDomain converts a delivery order domain aggregate to its database representation.
func fromDomain(aggregate *deliveryorder.DeliveryOrder) DeliveryOrderDTO {
	schedule := aggregate.Schedule()

	return DeliveryOrderDTO{
		ID:                 aggregate.ID().Bytes(),
		SourceType:         int(aggregate.Source().Type()),
		SourceID:           aggregate.Source().ID().Bytes(),
		CoveredJobOrderID:  aggregate.Source().CoveredJobOrderID().Bytes(),
		DriverID:           aggregate.DriverID(),
		VehicleID:          aggregate.VehicleID(),
		TransportLocked:    aggregate.TransportLocked(),
		Status:             int(aggregate.Status()),
		Priority:           int(aggregate.Priority()),
		Temperature:        aggregate.Temperature(),
		DODate:             schedule.DODate,
		DepartureDate:      schedule.DepartureDate,
		ETA:                schedule.ETA,
		DeliveredDate:      schedule.DeliveredDate,
		CancellationReason: aggregate.CancellationReason(),
	}
}

// toDomain converts a database DTO to a delivery order domain aggregate.
func toDomain(dto DeliveryOrderDTO) (*deliveryorder.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sourceID, err := kernel.UUIDFromBytes(dto.SourceID[:])
	if err != nil {
		return nil, err
	}

	var source deliveryorder.Source
	if deliveryorder.SourceType(dto.SourceType) == deliveryorder.SourceManifest {
		coveredID, coveredErr := kernel.UUIDFromBytes(dto.CoveredJobOrderID[:])
		if coveredErr != nil {
			return nil, coveredErr
		}
		source, err = deliveryorder.NewManifestSource(sourceID, coveredID)
	} else {
		source, err = deliveryorder.NewJobOrderSource(sourceID)
	}
	if err != nil {
		return nil, err
	}

	return deliveryorder.RestoreDeliveryOrder(
		id,
		source,
		dto.DriverID,
		dto.VehicleID,
		deliveryorder.Status(dto.Status),
		deliveryorder.Priority(dto.Priority),
		dto.Temperature,
		deliveryorder.Schedule{
			DODate:        dto.DODate,
			DepartureDate: dto.DepartureDate,
			ETA:           dto.ETA,
			DeliveredDate: dto.DeliveredDate,
		},
		dto.CancellationReason,
	)
}
