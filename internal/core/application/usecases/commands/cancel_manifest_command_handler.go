package commands

import (
	"context"
)

// CancelManifestCommandHandler withdraws a manifest. The aggregate rejects
// cancellation once the trip left the depot.
type CancelManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCancelManifestCommandHandler creates a handler for manifest cancellation.
func NewCancelManifestCommandHandler(uowFactory ManifestUoWFactory) CancelManifestCommandHandler {
	return CancelManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the manifest, cancels it with the reason, and persists it.
func (h *CancelManifestCommandHandler) Handle(ctx context.Context, cmd CancelManifestCommand) error {
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

	if err = mf.Cancel(cmd.Reason()); err != nil {
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
