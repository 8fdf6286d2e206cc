package http

import (
	netHTTP "net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
)

// CreateDeliveryOrder handles POST /api/v1/delivery-orders - derives a
// delivery order from a job order or a manifest constituent. The covered job
// order is claimed atomically; a concurrent claim of the same coverage yields
// a conflict.
func (s *Server) CreateDeliveryOrder(ctx echo.Context) error {
	var request CreateDeliveryOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	sourceType, err := deliveryorder.ParseSourceType(request.SourceType)
	if err != nil {
		return problem(ctx, err)
	}

	priority, err := deliveryorder.ParsePriority(request.Priority)
	if err != nil {
		return problem(ctx, err)
	}

	jobOrderID, err := kernel.UUIDFromString(request.JobOrderID)
	if err != nil {
		return badRequest(ctx, "invalid job order id")
	}

	// Job order sources cover themselves; manifest sources name the manifest
	// and select which constituent this delivery order covers.
	sourceID := jobOrderID
	if sourceType == deliveryorder.SourceManifest {
		sourceID, err = kernel.UUIDFromString(request.ManifestID)
		if err != nil {
			return badRequest(ctx, "invalid manifest id")
		}
	}

	deliveryOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryOrderCommand(
		deliveryOrderID,
		sourceType,
		sourceID,
		jobOrderID,
		request.DriverID,
		request.VehicleID,
		priority,
		request.Temperature,
		request.DODate,
		request.DepartureDate,
		request.ETA,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.createDeliveryOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(netHTTP.StatusCreated, IDResponse{ID: deliveryOrderID.String()})
}

// GetDeliveryOrders handles GET /api/v1/delivery-orders - lists delivery
// orders, optionally filtered by ?status=.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	var query queries.GetDeliveryOrdersQuery
	if rawStatus := ctx.QueryParam("status"); rawStatus != "" {
		status, err := deliveryorder.ParseStatus(rawStatus)
		if err != nil {
			return problem(ctx, err)
		}
		query, err = queries.NewGetDeliveryOrdersQueryWithStatus(status)
		if err != nil {
			return problem(ctx, err)
		}
	} else {
		query = queries.NewGetDeliveryOrdersQuery()
	}

	deliveryOrders, err := s.getDeliveryOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]DeliveryOrderResponse, len(deliveryOrders))
	for i, deliveryOrder := range deliveryOrders {
		response[i] = DeliveryOrderResponse{
			ID:                 deliveryOrder.ID.String(),
			SourceType:         deliveryOrder.SourceType,
			SourceID:           deliveryOrder.SourceID.String(),
			CoveredJobOrderID:  deliveryOrder.CoveredJobOrderID.String(),
			DriverID:           deliveryOrder.DriverID,
			VehicleID:          deliveryOrder.VehicleID,
			TransportLocked:    deliveryOrder.TransportLocked,
			Status:             deliveryOrder.Status,
			Priority:           deliveryOrder.Priority,
			Temperature:        deliveryOrder.Temperature,
			DODate:             deliveryOrder.DODate,
			DepartureDate:      deliveryOrder.DepartureDate,
			ETA:                deliveryOrder.ETA,
			DeliveredDate:      deliveryOrder.DeliveredDate,
			CancellationReason: deliveryOrder.CancellationReason,
		}
	}

	return ctx.JSON(netHTTP.StatusOK, response)
}

// AdvanceDeliveryOrder handles POST /api/v1/delivery-orders/:id/advance -
// moves a delivery order to the requested lifecycle status. Reaching delivered
// stamps the delivered date.
func (s *Server) AdvanceDeliveryOrder(ctx echo.Context) error {
	deliveryOrderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid delivery order id")
	}

	var request AdvanceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := deliveryorder.ParseStatus(request.Target)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryOrderCommand(deliveryOrderID, target)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.advanceDeliveryOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}

// CancelDeliveryOrder handles POST /api/v1/delivery-orders/:id/cancel -
// withdraws a delivery order and releases its coverage claim.
func (s *Server) CancelDeliveryOrder(ctx echo.Context) error {
	deliveryOrderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid delivery order id")
	}

	var request CancelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelDeliveryOrderCommand(deliveryOrderID, request.Reason)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.cancelDeliveryOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}
