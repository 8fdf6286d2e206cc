// Package http exposes the workflow engine over a JSON REST API.
//
// The server translates HTTP requests into application commands and queries,
// delegates to their handlers, and maps domain errors onto HTTP statuses.
// It holds no business logic of its own; validation beyond basic shape checks
// happens in the command constructors and the domain model.
package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobOrderHandler       commands.CreateJobOrderCommandHandler
	assignTransportHandler      commands.AssignTransportCommandHandler
	advanceJobOrderHandler      commands.AdvanceJobOrderCommandHandler
	createManifestHandler       commands.CreateManifestCommandHandler
	bindManifestHandler         commands.BindManifestTransportCommandHandler
	advanceManifestHandler      commands.AdvanceManifestCommandHandler
	cancelManifestHandler       commands.CancelManifestCommandHandler
	createDeliveryOrderHandler  commands.CreateDeliveryOrderCommandHandler
	advanceDeliveryOrderHandler commands.AdvanceDeliveryOrderCommandHandler
	cancelDeliveryOrderHandler  commands.CancelDeliveryOrderCommandHandler
	createInvoiceHandler        commands.CreateInvoiceCommandHandler
	updateInvoiceHandler        commands.UpdateInvoiceCommandHandler
	cancelInvoiceHandler        commands.CancelInvoiceCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler

	// Query handlers
	getJobOrderHandler            queries.GetJobOrderQueryHandler
	getDeliveryOrdersHandler      queries.GetDeliveryOrdersQueryHandler
	getInvoiceHandler             queries.GetInvoiceQueryHandler
	getOutstandingInvoicesHandler queries.GetOutstandingInvoicesQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobOrderHandler commands.CreateJobOrderCommandHandler,
	assignTransportHandler commands.AssignTransportCommandHandler,
	advanceJobOrderHandler commands.AdvanceJobOrderCommandHandler,
	createManifestHandler commands.CreateManifestCommandHandler,
	bindManifestHandler commands.BindManifestTransportCommandHandler,
	advanceManifestHandler commands.AdvanceManifestCommandHandler,
	cancelManifestHandler commands.CancelManifestCommandHandler,
	createDeliveryOrderHandler commands.CreateDeliveryOrderCommandHandler,
	advanceDeliveryOrderHandler commands.AdvanceDeliveryOrderCommandHandler,
	cancelDeliveryOrderHandler commands.CancelDeliveryOrderCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	updateInvoiceHandler commands.UpdateInvoiceCommandHandler,
	cancelInvoiceHandler commands.CancelInvoiceCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	getJobOrderHandler queries.GetJobOrderQueryHandler,
	getDeliveryOrdersHandler queries.GetDeliveryOrdersQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getOutstandingInvoicesHandler queries.GetOutstandingInvoicesQueryHandler,
) *Server {
	return &Server{
		createJobOrderHandler:         createJobOrderHandler,
		assignTransportHandler:        assignTransportHandler,
		advanceJobOrderHandler:        advanceJobOrderHandler,
		createManifestHandler:         createManifestHandler,
		bindManifestHandler:           bindManifestHandler,
		advanceManifestHandler:        advanceManifestHandler,
		cancelManifestHandler:         cancelManifestHandler,
		createDeliveryOrderHandler:    createDeliveryOrderHandler,
		advanceDeliveryOrderHandler:   advanceDeliveryOrderHandler,
		cancelDeliveryOrderHandler:    cancelDeliveryOrderHandler,
		createInvoiceHandler:          createInvoiceHandler,
		updateInvoiceHandler:          updateInvoiceHandler,
		cancelInvoiceHandler:          cancelInvoiceHandler,
		recordPaymentHandler:          recordPaymentHandler,
		getJobOrderHandler:            getJobOrderHandler,
		getDeliveryOrdersHandler:      getDeliveryOrdersHandler,
		getInvoiceHandler:             getInvoiceHandler,
		getOutstandingInvoicesHandler: getOutstandingInvoicesHandler,
		validate:                      validator.New(),
	}
}

// RegisterRoutes mounts all API endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/job-orders", s.CreateJobOrder)
	v1.GET("/job-orders/:id", s.GetJobOrder)
	v1.POST("/job-orders/:id/transport", s.AssignTransport)
	v1.POST("/job-orders/:id/advance", s.AdvanceJobOrder)

	v1.POST("/manifests", s.CreateManifest)
	v1.POST("/manifests/:id/transport", s.BindManifestTransport)
	v1.POST("/manifests/:id/advance", s.AdvanceManifest)
	v1.POST("/manifests/:id/cancel", s.CancelManifest)

	v1.POST("/delivery-orders", s.CreateDeliveryOrder)
	v1.GET("/delivery-orders", s.GetDeliveryOrders)
	v1.POST("/delivery-orders/:id/advance", s.AdvanceDeliveryOrder)
	v1.POST("/delivery-orders/:id/cancel", s.CancelDeliveryOrder)

	v1.POST("/invoices", s.CreateInvoice)
	v1.GET("/invoices/outstanding", s.GetOutstandingInvoices)
	v1.GET("/invoices/:id", s.GetInvoice)
	v1.PATCH("/invoices/:id", s.UpdateInvoice)
	v1.POST("/invoices/:id/cancel", s.CancelInvoice)
	v1.POST("/invoices/:id/payments", s.RecordPayment)
}

// pathUUID extracts and validates the :id path parameter.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
