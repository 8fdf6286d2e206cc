package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateJobOrderRequest registers a new job order with its goods line.
// Weight, volume, and order value accept JSON numbers or strings; decimals
// survive either way.
type CreateJobOrderRequest struct {
	OrderType  string          `json:"orderType" validate:"required,oneof=FTL LTL"`
	WeightKg   decimal.Decimal `json:"weightKg"`
	VolumeM3   decimal.Decimal `json:"volumeM3"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	OrderValue decimal.Decimal `json:"orderValue"`
}

// AssignTransportRequest binds a driver and vehicle pair.
type AssignTransportRequest struct {
	DriverID  string `json:"driverId" validate:"required"`
	VehicleID string `json:"vehicleId" validate:"required"`
}

// AdvanceRequest moves a lifecycle to a target status.
type AdvanceRequest struct {
	Target string `json:"target" validate:"required"`
}

// CancelRequest withdraws a resource with a mandatory reason.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// CreateManifestRequest composes a manifest from selected job orders.
// Transport is optional at composition time; driver and vehicle come
// together or not at all.
type CreateManifestRequest struct {
	JobOrderIDs []string `json:"jobOrderIds" validate:"required,min=1,dive,required"`
	DriverID    string   `json:"driverId"`
	VehicleID   string   `json:"vehicleId"`
}

// CreateDeliveryOrderRequest derives a delivery order from a job order or a
// manifest constituent. For manifest sources, manifestId identifies the
// manifest and jobOrderId selects the covered constituent. For job order
// sources, manifestId is absent.
type CreateDeliveryOrderRequest struct {
	SourceType    string     `json:"sourceType" validate:"required,oneof=JO MF"`
	ManifestID    string     `json:"manifestId"`
	JobOrderID    string     `json:"jobOrderId" validate:"required"`
	DriverID      string     `json:"driverId"`
	VehicleID     string     `json:"vehicleId"`
	Priority      string     `json:"priority" validate:"required"`
	Temperature   string     `json:"temperature"`
	DODate        time.Time  `json:"doDate" validate:"required"`
	DepartureDate *time.Time `json:"departureDate"`
	ETA           *time.Time `json:"eta"`
}

// CreateInvoiceRequest opens an invoice against a billable source.
type CreateInvoiceRequest struct {
	SourceType string          `json:"sourceType" validate:"required,oneof=JO DO MF"`
	SourceID   string          `json:"sourceId" validate:"required"`
	CustomerID string          `json:"customerId" validate:"required"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxRate    decimal.Decimal `json:"taxRate"`
	DueDate    time.Time       `json:"dueDate" validate:"required"`
}

// UpdateInvoiceRequest edits an invoice. Absent fields stay untouched.
// Subtotal and tax rate come together; amounts lock once a payment lands.
type UpdateInvoiceRequest struct {
	Subtotal *decimal.Decimal `json:"subtotal"`
	TaxRate  *decimal.Decimal `json:"taxRate"`
	DueDate  *time.Time       `json:"dueDate"`
	Notes    *string          `json:"notes"`
}

// RecordPaymentRequest appends a payment to an invoice's ledger.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate" validate:"required"`
	Method      string          `json:"method" validate:"required"`
	Notes       string          `json:"notes"`
	ProofRef    string          `json:"proofRef"`
}

// PaymentResponse is one ledger entry in invoice responses.
type PaymentResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"`
	Notes       string          `json:"notes,omitempty"`
	ProofRef    string          `json:"proofRef,omitempty"`
}

// InvoiceResponse is the full invoice read model with its ledger.
type InvoiceResponse struct {
	ID                 string            `json:"id"`
	SourceType         string            `json:"sourceType"`
	SourceID           string            `json:"sourceId"`
	CustomerID         string            `json:"customerId"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	TaxRate            decimal.Decimal   `json:"taxRate"`
	TaxAmount          decimal.Decimal   `json:"taxAmount"`
	TotalAmount        decimal.Decimal   `json:"totalAmount"`
	PaidAmount         decimal.Decimal   `json:"paidAmount"`
	OutstandingAmount  decimal.Decimal   `json:"outstandingAmount"`
	DueDate            time.Time         `json:"dueDate"`
	Status             string            `json:"status"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	Payments           []PaymentResponse `json:"payments"`
}

// OutstandingInvoiceResponse is one open invoice in the outstanding listing.
type OutstandingInvoiceResponse struct {
	ID                string          `json:"id"`
	SourceType        string          `json:"sourceType"`
	SourceID          string          `json:"sourceId"`
	CustomerID        string          `json:"customerId"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	DueDate           time.Time       `json:"dueDate"`
	Status            string          `json:"status"`
}

// DeliveryOrderResponse is one delivery order in the listing read model.
type DeliveryOrderResponse struct {
	ID                 string     `json:"id"`
	SourceType         string     `json:"sourceType"`
	SourceID           string     `json:"sourceId"`
	CoveredJobOrderID  string     `json:"coveredJobOrderId"`
	DriverID           string     `json:"driverId"`
	VehicleID          string     `json:"vehicleId"`
	TransportLocked    bool       `json:"transportLocked"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	Temperature        string     `json:"temperature,omitempty"`
	DODate             time.Time  `json:"doDate"`
	DepartureDate      *time.Time `json:"departureDate,omitempty"`
	ETA                *time.Time `json:"eta,omitempty"`
	DeliveredDate      *time.Time `json:"deliveredDate,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
}

// AssignmentResponse is the active transport pair on a job order.
type AssignmentResponse struct {
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
}

// JobOrderResponse is the job order read model.
type JobOrderResponse struct {
	ID         string              `json:"id"`
	OrderType  string              `json:"orderType"`
	Status     string              `json:"status"`
	WeightKg   decimal.Decimal     `json:"weightKg"`
	VolumeM3   decimal.Decimal     `json:"volumeM3"`
	Quantity   int                 `json:"quantity"`
	OrderValue decimal.Decimal     `json:"orderValue"`
	Assignment *AssignmentResponse `json:"assignment,omitempty"`
}
