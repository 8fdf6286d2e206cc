package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
		"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
	)
)

// GetDeliveryOrdersQuery retrieves delivery orders, optionally filtered by
// lifecycle status. With no filter it returns every delivery order.
type GetDeliveryOrdersQuery struct {
	status    deliveryorder.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersQuery creates a query for all delivery orders.
func NewGetDeliveryOrdersQuery() GetDeliveryOrdersQuery {
	return GetDeliveryOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// NewGetDeliveryOrdersQueryWithStatus creates a query for delivery orders in
// one lifecycle state.
func NewGetDeliveryOrdersQueryWithStatus(
	status deliveryorder.Status,
) (GetDeliveryOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveryOrdersQuery{}, err
	}

	return GetDeliveryOrdersQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status filter and whether one was set.
func (q GetDeliveryOrdersQuery) StatusFilter() (deliveryorder.Status, bool) {
	return q.status, q.hasStatus
}

// GetDeliveryOrdersQueryResponse represents one delivery order in the read
// model. Nullable timestamps are pointers; nil means not yet recorded.
type GetDeliveryOrdersQueryResponse struct {
	ID                 kernel.UUID
	SourceType         string
	SourceID           kernel.UUID
	CoveredJobOrderID  kernel.UUID
	DriverID           string
	VehicleID          string
	TransportLocked    bool
	Status             string
	Priority           string
	Temperature        string
	DODate             time.Time
	DepartureDate      *time.Time
	ETA                *time.Time
	DeliveredDate      *time.Time
	CancellationReason string
}
