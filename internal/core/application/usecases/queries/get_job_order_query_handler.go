package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobOrderQueryHandler retrieves a single job order with its active
// transport assignment from the database. Uses direct SQL queries for
// optimal read performance in the CQRS pattern.
type GetJobOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetJobOrderQueryHandler creates a handler for job order retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetJobOrderQueryHandler(db *gorm.DB) GetJobOrderQueryHandler {
	return GetJobOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one job order. Returns an
// ObjectNotFound error when no job order exists with the given identifier.
func (h GetJobOrderQueryHandler) Handle(
	ctx context.Context,
	query GetJobOrderQuery,
) (GetJobOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobOrderQueryResponse{}, err
	}

	var response GetJobOrderQueryResponse
	var id uuid.UUID
	var orderType, status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			weight_kg,
			volume_m3,
			quantity,
			order_value
		FROM job_orders
		WHERE id = ?
	`, query.JobOrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&orderType,
		&status,
		&response.WeightKg,
		&response.VolumeM3,
		&response.Quantity,
		&response.OrderValue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetJobOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"jobOrder", query.JobOrderID())
		}
		return GetJobOrderQueryResponse{}, err
	}

	jobOrderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetJobOrderQueryResponse{}, idErr
	}
	response.ID = jobOrderID
	response.OrderType = joborder.OrderType(orderType).String()
	response.Status = joborder.Status(status).String()

	assignment, err := h.loadActiveAssignment(ctx, query.JobOrderID())
	if err != nil {
		return GetJobOrderQueryResponse{}, err
	}
	response.Assignment = assignment

	return response, nil
}

func (h GetJobOrderQueryHandler) loadActiveAssignment(
	ctx context.Context,
	jobOrderID kernel.UUID,
) (*AssignmentResponse, error) {
	var assignment AssignmentResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			vehicle_id
		FROM job_order_assignments
		WHERE job_order_id = ? AND status = ?
	`, jobOrderID.Bytes(), int(joborder.AssignmentActive)).Row()

	err := row.Scan(&assignment.DriverID, &assignment.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &assignment, nil
}
