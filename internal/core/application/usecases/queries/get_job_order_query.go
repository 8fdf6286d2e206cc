package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetJobOrderQueryIsNotConstructed = errors.New(
		"GetJobOrderQuery must be created via NewGetJobOrderQuery constructor",
	)
)

// GetJobOrderQuery retrieves a single job order together with its active
// transport assignment, when one exists.
type GetJobOrderQuery struct {
	jobOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobOrderQuery creates a query to retrieve one job order by
// identifier.
func NewGetJobOrderQuery(jobOrderID kernel.UUID) (GetJobOrderQuery, error) {
	if err := jobOrderID.Validate(); err != nil {
		return GetJobOrderQuery{}, err
	}

	return GetJobOrderQuery{
		jobOrderID: jobOrderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetJobOrderQueryIsNotConstructed)
}

// JobOrderID returns the requested job order identifier.
func (q GetJobOrderQuery) JobOrderID() kernel.UUID {
	return q.jobOrderID
}

// AssignmentResponse represents the active transport assignment in the read
// model.
type AssignmentResponse struct {
	DriverID  string
	VehicleID string
}

// GetJobOrderQueryResponse represents a job order in the read model.
// Assignment is nil when no transport is currently assigned.
type GetJobOrderQueryResponse struct {
	ID         kernel.UUID
	OrderType  string
	Status     string
	WeightKg   decimal.Decimal
	VolumeM3   decimal.Decimal
	Quantity   int
	OrderValue decimal.Decimal
	Assignment *AssignmentResponse
}
