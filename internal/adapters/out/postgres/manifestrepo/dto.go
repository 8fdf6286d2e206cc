// Package manifestrepo provides data transfer objects and mapping functions for manifest persistence.
// Handles the conversion between manifest domain aggregates and their relational
// representation, with the job order membership as child rows.
package manifestrepo

import (
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the database structure for persisting manifest aggregates.
type ManifestDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Status             int              `gorm:"type:int;not null"`
	DriverID           string           `gorm:"type:varchar(255)"`
	VehicleID          string           `gorm:"type:varchar(255)"`
	CancellationReason string           `gorm:"type:text"`
	JobOrders          []ManifestItemDTO `gorm:"foreignKey:ManifestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for manifest entities.
// Overrides GORM's default naming convention to use "manifests" instead of "manifest_dtos".
func (ManifestDTO) TableName() string {
	return "manifests"
}

// ManifestItemDTO represents one job order membership row. The order type is
// denormalized onto the row so the grouping rules can be re-validated on
// restore without loading the member aggregates.
type ManifestItemDTO struct {
	ManifestID uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType  int       `gorm:"type:int;not null"`
	Seq        int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for manifest membership rows.
// Overrides GORM's default naming convention to use "manifest_job_orders".
func (ManifestItemDTO) TableName() string {
	return "manifest_job_orders"
}

// fromDomain converts a manifest domain aggregate to its database representation.
func fromDomain(aggregate *manifest.Manifest) ManifestDTO {
	manifestID := aggregate.ID().Bytes()
	items := make([]ManifestItemDTO, 0, len(aggregate.JobOrders()))

	for i, ref := range aggregate.JobOrders() {
		items = append(items, ManifestItemDTO{
			ManifestID: manifestID,
			JobOrderID: ref.ID.Bytes(),
			OrderType:  int(ref.Type),
			Seq:        i,
		})
	}

	return ManifestDTO{
		ID:                 manifestID,
		Status:             int(aggregate.Status()),
		DriverID:           aggregate.DriverID(),
		VehicleID:          aggregate.VehicleID(),
		CancellationReason: aggregate.CancellationReason(),
		JobOrders:          items,
	}
}

// toDomain converts a database DTO to a manifest domain aggregate.
// Reconstructs the complete aggregate including its membership using
// RestoreManifest, which re-validates the grouping rules.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	selection := make([]joborder.Ref, 0, len(dto.JobOrders))
	for _, item := range dto.JobOrders {
		jobOrderID, itemErr := kernel.UUIDFromBytes(item.JobOrderID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		selection = append(selection, joborder.Ref{
			ID:   jobOrderID,
			Type: joborder.OrderType(item.OrderType),
		})
	}

	return manifest.RestoreManifest(
		id,
		manifest.Status(dto.Status),
		dto.DriverID,
		dto.VehicleID,
		selection,
		dto.CancellationReason,
	)
}
