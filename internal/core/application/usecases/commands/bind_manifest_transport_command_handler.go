package commands

import (
	"context"
)

// BindManifestTransportCommandHandler binds a driver/vehicle pair to a
// manifest. Required before any delivery order can derive from it.
type BindManifestTransportCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewBindManifestTransportCommandHandler creates a handler for transport binding.
func NewBindManifestTransportCommandHandler(uowFactory ManifestUoWFactory) BindManifestTransportCommandHandler {
	return BindManifestTransportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the manifest, binds the pair, and persists it.
func (h *BindManifestTransportCommandHandler) Handle(ctx context.Context, cmd BindManifestTransportCommand) error {
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

	manifestRepo := uow.ManifestRepository()
	mf, err := manifestRepo.Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	if err = mf.BindTransport(cmd.DriverID(), cmd.VehicleID()); err != nil {
		return err
	}

	if err = manifestRepo.Update(ctx, mf); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
