package http

import (
	netHTTP "net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"
)

// CreateManifest handles POST /api/v1/manifests - composes a manifest from
// the selected job orders, optionally binding transport at the same time.
func (s *Server) CreateManifest(ctx echo.Context) error {
	var request CreateManifestRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	jobOrderIDs := make([]kernel.UUID, 0, len(request.JobOrderIDs))
	for _, raw := range request.JobOrderIDs {
		jobOrderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid job order id: "+raw)
		}
		jobOrderIDs = append(jobOrderIDs, jobOrderID)
	}

	manifestID := kernel.NewUUID()
	cmd, err := commands.NewCreateManifestCommand(manifestID, jobOrderIDs, request.DriverID, request.VehicleID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.createManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(netHTTP.StatusCreated, IDResponse{ID: manifestID.String()})
}

// BindManifestTransport handles POST /api/v1/manifests/:id/transport - binds
// a driver and vehicle pair to a composed manifest.
func (s *Server) BindManifestTransport(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid manifest id")
	}

	var request AssignTransportRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewBindManifestTransportCommand(manifestID, request.DriverID, request.VehicleID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.bindManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}

// AdvanceManifest handles POST /api/v1/manifests/:id/advance - moves a
// manifest to the requested lifecycle status.
func (s *Server) AdvanceManifest(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid manifest id")
	}

	var request AdvanceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := manifest.ParseStatus(request.Target)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewAdvanceManifestCommand(manifestID, target)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.advanceManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}

// CancelManifest handles POST /api/v1/manifests/:id/cancel - withdraws an
// open manifest and releases its constituents.
func (s *Server) CancelManifest(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid manifest id")
	}

	var request CancelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelManifestCommand(manifestID, request.Reason)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.cancelManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}
