// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
)

// JobOrderRepository defines the persistence contract for job order aggregates.
// Provides methods for storing and retrieving job orders with their full
// assignment history.
type JobOrderRepository interface {
	// Add persists a new job order aggregate to storage.
	// The job order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *joborder.JobOrder) error

	// Update persists changes to an existing job order aggregate.
	// The job order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *joborder.JobOrder) error

	// Get retrieves a job order aggregate by its unique identifier.
	// Returns the complete job order with its assignment history.
	Get(ctx context.Context, id kernel.UUID) (*joborder.JobOrder, error)

	// GetMany retrieves several job orders at once, in no particular order.
	// Missing identifiers are reported as an error rather than skipped:
	// callers use this to validate manifest selections, and a silently
	// dropped member would defeat the check.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*joborder.JobOrder, error)
}
