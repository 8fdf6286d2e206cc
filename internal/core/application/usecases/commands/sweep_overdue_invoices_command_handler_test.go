package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingPastDueInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	// Created before the due date, so it persists as Pending; the due date
	// has since passed without the stored status catching up.
	dueDate := time.Now().UTC().Add(-24 * time.Hour)
	inv, err := invoice.RestoreInvoice(
		kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
		kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
		kernel.ZeroMoney(), dueDate, invoice.Pending, "", "", nil)
	require.NoError(t, err)
	return inv
}

func TestSweepOverdueInvoicesCommandHandler_Handle_FlipsStaleStatuses(t *testing.T) {
	ctx := t.Context()
	first := pendingPastDueInvoice(t)
	second := pendingPastDueInvoice(t)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllDueBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*invoice.Invoice{first, second}, nil).Once(),
		invoiceRepo.On("Update", ctx, first).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepOverdueInvoicesCommandHandler(factory)
	err := handler.Handle(ctx, commands.NewSweepOverdueInvoicesCommand())

	require.NoError(t, err)
	assert.Equal(t, invoice.Overdue, first.Status())
	assert.Equal(t, invoice.Overdue, second.Status())
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSweepOverdueInvoicesCommandHandler_Handle_NothingToDo(t *testing.T) {
	ctx := t.Context()

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllDueBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*invoice.Invoice{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepOverdueInvoicesCommandHandler(factory)
	err := handler.Handle(ctx, commands.NewSweepOverdueInvoicesCommand())

	require.NoError(t, err)
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
