package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOutstandingInvoicesQueryHandler retrieves all invoices with an unpaid
// balance. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// Example:
//
//	handler := NewGetOutstandingInvoicesQueryHandler(db)
//	query, _ := NewGetOutstandingInvoicesQuery(time.Now().UTC())
//
//	open, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get outstanding invoices: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d open invoices\n", len(open))
type GetOutstandingInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetOutstandingInvoicesQueryHandler creates a handler for open invoice
// queries. Requires a GORM database connection for query execution.
func NewGetOutstandingInvoicesQueryHandler(db *gorm.DB) GetOutstandingInvoicesQueryHandler {
	return GetOutstandingInvoicesQueryHandler{db: db}
}

// Handle executes the query to retrieve all open invoices sorted by due date.
// A Pending invoice whose due date has passed the reference time is reported
// as Overdue even if the stored status has not been refreshed yet.
func (h GetOutstandingInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetOutstandingInvoicesQuery,
) ([]GetOutstandingInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetOutstandingInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			source_type,
			source_id,
			customer_id,
			total_amount,
			paid_amount,
			due_date,
			status
		FROM invoices
		WHERE status IN (?, ?, ?)
		ORDER BY due_date
	`, int(invoice.Pending), int(invoice.Partial), int(invoice.Overdue)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOutstandingInvoicesQueryResponse
		var id, sourceID uuid.UUID
		var sourceType, status int

		err = rows.Scan(
			&id,
			&sourceType,
			&sourceID,
			&response.CustomerID,
			&response.TotalAmount,
			&response.PaidAmount,
			&response.DueDate,
			&status,
		)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = invoiceID

		invoiceSourceID, idErr := kernel.UUIDFromBytes(sourceID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.SourceID = invoiceSourceID

		response.SourceType = invoice.SourceType(sourceType).String()
		response.OutstandingAmount = response.TotalAmount.Sub(response.PaidAmount)

		invoiceStatus := invoice.Status(status)
		if invoiceStatus == invoice.Pending && response.DueDate.Before(query.AsOf()) {
			invoiceStatus = invoice.Overdue
		}
		response.Status = invoiceStatus.String()

		invoices = append(invoices, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
