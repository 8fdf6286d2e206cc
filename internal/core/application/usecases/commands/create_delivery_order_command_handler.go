package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateDeliveryOrderCommandHandler derives a dispatch document from its
// source aggregate. The derivation pipeline is:
//
//  1. Load the source (job order or manifest) and check it is dispatchable
//  2. Resolve transport through the TransportResolver
//  3. Reconcile explicit transport with the resolved pair
//  4. Claim the covered job order so no second live document consumes it
//  5. Create and persist the delivery order
//
// All five steps share one transaction; a claim conflict rolls everything
// back.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	resolver   services.TransportResolver
}

// NewCreateDeliveryOrderCommandHandler creates a handler for delivery order
// derivation.
func NewCreateDeliveryOrderCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	resolver services.TransportResolver,
) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle processes the derivation command.
func (h *CreateDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryOrderCommand) error {
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

	source, resolution, err := h.resolveSource(ctx, uow, cmd)
	if err != nil {
		return err
	}

	driverID, vehicleID := resolution.DriverID, resolution.VehicleID
	if cmd.HasExplicitTransport() {
		if !resolution.Editable &&
			(cmd.DriverID() != resolution.DriverID || cmd.VehicleID() != resolution.VehicleID) {
			return errs.NewBusinessRuleError(errs.ErrEditLocked,
				"transport is inherited from the manifest and cannot differ from it")
		}
		driverID, vehicleID = cmd.DriverID(), cmd.VehicleID()
	}

	if driverID == "" || vehicleID == "" {
		return errs.NewBusinessRuleError(errs.ErrMissingResource,
			fmt.Sprintf("job order %s has no transport assignment and the command supplies none",
				cmd.JobOrderID()))
	}

	if err = uow.SourceClaimRepository().Claim(ctx, source, cmd.DeliveryOrderID()); err != nil {
		return err
	}

	do, err := deliveryorder.NewDeliveryOrder(
		cmd.DeliveryOrderID(), source, driverID, vehicleID,
		cmd.Priority(), cmd.Temperature(), deliveryorder.Schedule{
			DODate:        cmd.DODate(),
			DepartureDate: cmd.DepartureDate(),
			ETA:           cmd.ETA(),
		})
	if err != nil {
		return err
	}

	if err = uow.DeliveryOrderRepository().Add(ctx, do); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveSource loads the source aggregate, checks dispatchability, and
// returns the derivation source plus the resolved transport.
func (h *CreateDeliveryOrderCommandHandler) resolveSource(
	ctx context.Context,
	uow DeliveryOrderUoW,
	cmd CreateDeliveryOrderCommand,
) (deliveryorder.Source, services.TransportResolution, error) {
	switch cmd.SourceType() {
	case deliveryorder.SourceManifest:
		mf, err := uow.ManifestRepository().Get(ctx, cmd.SourceID())
		if err != nil {
			return deliveryorder.Source{}, services.TransportResolution{}, err
		}

		if !mf.CanCreateDeliveryOrder() {
			return deliveryorder.Source{}, services.TransportResolution{},
				errs.NewBusinessRuleError(errs.ErrInvalidTransition,
					fmt.Sprintf("manifest %s is %s and cannot be dispatched", mf.ID(), mf.Status()))
		}
		if !mf.HasJobOrder(cmd.JobOrderID()) {
			return deliveryorder.Source{}, services.TransportResolution{},
				errs.NewObjectNotFoundError("jobOrderId", cmd.JobOrderID())
		}

		resolution, err := h.resolver.ResolveFromManifest(mf)
		if err != nil {
			return deliveryorder.Source{}, services.TransportResolution{}, err
		}

		source, err := deliveryorder.NewManifestSource(mf.ID(), cmd.JobOrderID())
		if err != nil {
			return deliveryorder.Source{}, services.TransportResolution{}, err
		}
		return source, resolution, nil

	default:
		jo, err := uow.JobOrderRepository().Get(ctx, cmd.JobOrderID())
		if err != nil {
			return deliveryorder.Source{}, services.TransportResolution{}, err
		}

		if jo.Status().IsTerminal() {
			return deliveryorder.Source{}, services.TransportResolution{},
				errs.NewBusinessRuleError(errs.ErrInvalidTransition,
					fmt.Sprintf("job order %s is %s and cannot be dispatched", jo.ID(), jo.Status()))
		}

		resolution, err := h.resolver.ResolveFromJobOrder(jo)
		if err != nil {
			return deliveryorder.Source{}, services.TransportResolution{}, err
		}

		source, err := deliveryorder.NewJobOrderSource(jo.ID())
		if err != nil {
			return deliveryorder.Source{}, services.TransportResolution{}, err
		}
		return source, resolution, nil
	}
}
