package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/pkg/errs"
)

// CreateManifestCommandHandler composes a manifest from real job order
// aggregates. Membership is validated against the loaded aggregates, never
// against caller-supplied truckload types.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCreateManifestCommandHandler creates a handler for manifest composition.
func NewCreateManifestCommandHandler(uowFactory ManifestUoWFactory) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads every selected job order, checks that each is still on the
// road to delivery, builds the manifest (grouping rules enforced by the
// aggregate), optionally binds transport, and persists it.
func (h *CreateManifestCommandHandler) Handle(ctx context.Context, cmd CreateManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobOrders, err := uow.JobOrderRepository().GetMany(ctx, cmd.JobOrderIDs())
	if err != nil {
		return err
	}

	selection := make([]joborder.Ref, 0, len(jobOrders))
	for _, jo := range jobOrders {
		if jo.Status().IsTerminal() {
			return errs.NewBusinessRuleError(errs.ErrGroupingConflict,
				fmt.Sprintf("job order %s is %s and cannot join a manifest", jo.ID(), jo.Status()))
		}
		selection = append(selection, jo.Ref())
	}

	mf, err := manifest.NewManifest(cmd.ManifestID(), selection)
	if err != nil {
		return err
	}

	if cmd.HasTransport() {
		if err = mf.BindTransport(cmd.DriverID(), cmd.VehicleID()); err != nil {
			return err
		}
	}

	if err = uow.ManifestRepository().Add(ctx, mf); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
