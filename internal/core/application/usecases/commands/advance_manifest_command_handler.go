package commands

import (
	"context"
)

// AdvanceManifestCommandHandler moves a manifest through its trip lifecycle.
type AdvanceManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewAdvanceManifestCommandHandler creates a handler for manifest advancement.
func NewAdvanceManifestCommandHandler(uowFactory ManifestUoWFactory) AdvanceManifestCommandHandler {
	return AdvanceManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the manifest, applies the transition, and persists it.
func (h *AdvanceManifestCommandHandler) Handle(ctx context.Context, cmd AdvanceManifestCommand) error {
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

	if err = mf.Advance(cmd.Target()); err != nil {
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
