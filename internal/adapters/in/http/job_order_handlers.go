package http

import (
	netHTTP "net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
)

// CreateJobOrder handles POST /api/v1/job-orders - registers a new job order.
func (s *Server) CreateJobOrder(ctx echo.Context) error {
	var request CreateJobOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	orderType, err := joborder.ParseOrderType(request.OrderType)
	if err != nil {
		return problem(ctx, err)
	}

	jobOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobOrderCommand(
		jobOrderID,
		orderType,
		request.WeightKg,
		request.VolumeM3,
		request.Quantity,
		kernel.NewMoney(request.OrderValue),
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.createJobOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(netHTTP.StatusCreated, IDResponse{ID: jobOrderID.String()})
}

// GetJobOrder handles GET /api/v1/job-orders/:id - retrieves one job order.
func (s *Server) GetJobOrder(ctx echo.Context) error {
	jobOrderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid job order id")
	}

	query, err := queries.NewGetJobOrderQuery(jobOrderID)
	if err != nil {
		return problem(ctx, err)
	}

	jobOrder, err := s.getJobOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := JobOrderResponse{
		ID:         jobOrder.ID.String(),
		OrderType:  jobOrder.OrderType,
		Status:     jobOrder.Status,
		WeightKg:   jobOrder.WeightKg,
		VolumeM3:   jobOrder.VolumeM3,
		Quantity:   jobOrder.Quantity,
		OrderValue: jobOrder.OrderValue,
	}
	if jobOrder.Assignment != nil {
		response.Assignment = &AssignmentResponse{
			DriverID:  jobOrder.Assignment.DriverID,
			VehicleID: jobOrder.Assignment.VehicleID,
		}
	}

	return ctx.JSON(netHTTP.StatusOK, response)
}

// AssignTransport handles POST /api/v1/job-orders/:id/transport - binds a
// driver and vehicle pair to a standalone job order.
func (s *Server) AssignTransport(ctx echo.Context) error {
	jobOrderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid job order id")
	}

	var request AssignTransportRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignTransportCommand(jobOrderID, request.DriverID, request.VehicleID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.assignTransportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}

// AdvanceJobOrder handles POST /api/v1/job-orders/:id/advance - moves a job
// order to the requested lifecycle status.
func (s *Server) AdvanceJobOrder(ctx echo.Context) error {
	jobOrderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid job order id")
	}

	var request AdvanceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := joborder.ParseStatus(request.Target)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewAdvanceJobOrderCommand(jobOrderID, target)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.advanceJobOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(netHTTP.StatusNoContent)
}
