package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates.
type ManifestRepository interface {
	// Add persists a new manifest aggregate to storage.
	// The manifest must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists changes to an existing manifest aggregate, including
	// membership changes.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate by its unique identifier.
	// Returns the complete manifest with its job order membership.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)
}
