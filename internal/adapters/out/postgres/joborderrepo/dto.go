// Package joborderrepo provides data transfer objects and mapping functions for job order persistence.
// This package implements the repository pattern for the job order domain aggregate, handling
// the conversion between domain entities and database representations.
package joborderrepo

import (
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobOrderDTO represents the database structure for persisting job order aggregates.
// Maps job order domain entities to relational database tables with the full
// assignment history as child rows.
type JobOrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderType   int             `gorm:"type:int;not null"`
	Status      int             `gorm:"type:int;not null"`
	WeightKg    decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	VolumeM3    decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	OrderValue  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Assignments []AssignmentDTO `gorm:"foreignKey:JobOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for job order entities.
// Overrides GORM's default naming convention to use "job_orders" instead of "job_order_dtos".
func (JobOrderDTO) TableName() string {
	return "job_orders"
}

// AssignmentDTO represents one row of a job order's assignment history.
// The sequence number preserves history order; rows are upserted in place
// when an assignment is released and a new one created, never deleted.
type AssignmentDTO struct {
	JobOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"type:int;primaryKey"`
	DriverID   string    `gorm:"type:varchar(255);not null"`
	VehicleID  string    `gorm:"type:varchar(255);not null"`
	Status     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "job_order_assignments".
func (AssignmentDTO) TableName() string {
	return "job_order_assignments"
}

// fromDomain converts a job order domain aggregate to its database representation.
func fromDomain(aggregate *joborder.JobOrder) JobOrderDTO {
	jobOrderID := aggregate.ID().Bytes()
	assignments := make([]AssignmentDTO, 0, len(aggregate.Assignments()))

	for i, a := range aggregate.Assignments() {
		assignments = append(assignments, AssignmentDTO{
			JobOrderID: jobOrderID,
			Seq:        i,
			DriverID:   a.DriverID(),
			VehicleID:  a.VehicleID(),
			Status:     int(a.Status()),
		})
	}

	return JobOrderDTO{
		ID:          jobOrderID,
		OrderType:   int(aggregate.OrderType()),
		Status:      int(aggregate.Status()),
		WeightKg:    aggregate.Goods().WeightKg(),
		VolumeM3:    aggregate.Goods().VolumeM3(),
		Quantity:    aggregate.Goods().Quantity(),
		OrderValue:  aggregate.OrderValue().Decimal(),
		Assignments: assignments,
	}
}

// toDomain converts a database DTO to a job order domain aggregate.
// Reconstructs the complete aggregate including its assignment history
// using RestoreJobOrder.
func toDomain(dto JobOrderDTO) (*joborder.JobOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	goods, err := joborder.NewGoods(dto.WeightKg, dto.VolumeM3, dto.Quantity)
	if err != nil {
		return nil, err
	}

	assignments := make([]joborder.Assignment, 0, len(dto.Assignments))
	for _, aDto := range dto.Assignments {
		a, aErr := joborder.RestoreAssignment(
			aDto.DriverID,
			aDto.VehicleID,
			joborder.AssignmentStatus(aDto.Status),
		)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, a)
	}

	return joborder.RestoreJobOrder(
		id,
		joborder.OrderType(dto.OrderType),
		joborder.Status(dto.Status),
		assignments,
		goods,
		kernel.NewMoney(dto.OrderValue),
	)
}
