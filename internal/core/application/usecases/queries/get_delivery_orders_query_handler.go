package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryOrdersQueryHandler retrieves delivery order information from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrdersQueryHandler creates a handler for delivery order
// retrieval queries. Requires a GORM database connection for query execution.
func NewGetDeliveryOrdersQueryHandler(db *gorm.DB) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve delivery orders sorted by scheduled
// date. Applies the status filter when the query carries one.
func (h GetDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrdersQuery,
) ([]GetDeliveryOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveryOrders := make([]GetDeliveryOrdersQueryResponse, 0)

	sqlText := `
		SELECT
			id,
			source_type,
			source_id,
			covered_job_order_id,
			driver_id,
			vehicle_id,
			transport_locked,
			status,
			priority,
			temperature,
			do_date,
			departure_date,
			eta,
			delivered_date,
			cancellation_reason
		FROM delivery_orders
	`
	args := make([]any, 0, 1)
	if status, ok := query.StatusFilter(); ok {
		sqlText += ` WHERE status = ?`
		args = append(args, int(status))
	}
	sqlText += ` ORDER BY do_date`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetDeliveryOrdersQueryResponse
		var id, sourceID, coveredJobOrderID uuid.UUID
		var sourceType, status, priority int
		var temperature, cancellationReason sql.NullString

		err = rows.Scan(
			&id,
			&sourceType,
			&sourceID,
			&coveredJobOrderID,
			&response.DriverID,
			&response.VehicleID,
			&response.TransportLocked,
			&status,
			&priority,
			&temperature,
			&response.DODate,
			&response.DepartureDate,
			&response.ETA,
			&response.DeliveredDate,
			&cancellationReason,
		)
		if err != nil {
			return nil, err
		}

		doID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = doID

		doSourceID, idErr := kernel.UUIDFromBytes(sourceID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.SourceID = doSourceID

		coveredID, idErr := kernel.UUIDFromBytes(coveredJobOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.CoveredJobOrderID = coveredID

		response.SourceType = deliveryorder.SourceType(sourceType).String()
		response.Status = deliveryorder.Status(status).String()
		response.Priority = deliveryorder.Priority(priority).String()
		response.Temperature = temperature.String
		response.CancellationReason = cancellationReason.String

		deliveryOrders = append(deliveryOrders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveryOrders, nil
}
