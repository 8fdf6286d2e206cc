// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobOrderRepoFactory provides access to the job order repository within a transaction.
	JobOrderRepoFactory interface {
		JobOrderRepository() ports.JobOrderRepository
	}

	// ManifestRepoFactory provides access to the manifest repository within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// DeliveryOrderRepoFactory provides access to the delivery order repository within a transaction.
	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// SourceClaimRepoFactory provides access to the source claim repository within a transaction.
	SourceClaimRepoFactory interface {
		SourceClaimRepository() ports.SourceClaimRepository
	}

	// JobOrderUoW manages transactions for job-order-only operations.
	JobOrderUoW interface {
		TxManager
		JobOrderRepoFactory
	}

	// JobOrderUoWFactory creates new job order unit of work instances.
	JobOrderUoWFactory interface {
		Create() JobOrderUoW
	}

	// ManifestUoW manages transactions for manifest operations. Manifest
	// composition reads job orders to validate grouping, so both
	// repositories share the transaction.
	ManifestUoW interface {
		TxManager
		ManifestRepoFactory
		JobOrderRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// DeliveryOrderUoW manages transactions for delivery order derivation
	// and lifecycle. Derivation reads the source aggregate, writes the
	// delivery order, and records the source claim in one transaction.
	DeliveryOrderUoW interface {
		TxManager
		DeliveryOrderRepoFactory
		JobOrderRepoFactory
		ManifestRepoFactory
		SourceClaimRepoFactory
	}

	// DeliveryOrderUoWFactory creates new delivery order unit of work instances.
	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}

	// InvoiceUoW manages transactions for invoice and payment operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}
)
