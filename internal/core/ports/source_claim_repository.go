package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
)

// SourceClaimRepository records which job order coverage each delivery order
// consumed. A job order is covered by at most one live delivery order per
// derivation path; the claim table is the arbiter under concurrency.
type SourceClaimRepository interface {
	// Claim records that the delivery order consumes the source's covered
	// job order. Fails with an AlreadyClaimed kind when another live
	// delivery order already holds the claim. The insert and its uniqueness
	// check are atomic; two concurrent claims for the same job order cannot
	// both succeed.
	Claim(ctx context.Context, source deliveryorder.Source, deliveryOrderID kernel.UUID) error

	// Release frees every claim held by the delivery order. Called when a
	// delivery order is cancelled so the job order becomes derivable again.
	Release(ctx context.Context, deliveryOrderID kernel.UUID) error
}
