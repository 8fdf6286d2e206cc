package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryOrderRepository defines the persistence contract for delivery
// order aggregates.
type DeliveryOrderRepository interface {
	// Add persists a new delivery order aggregate to storage.
	// The delivery order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error

	// Update persists changes to an existing delivery order aggregate.
	Update(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error

	// Get retrieves a delivery order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error)
}
