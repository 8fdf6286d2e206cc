package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), invoice.SourceDeliveryOrder, kernel.NewUUID(), "CUST-042",
		kernel.NewMoneyFromInt(6_000_000), decimal.NewFromInt(11),
		time.Now().AddDate(0, 1, 0), time.Now())
	require.NoError(t, err)
	return inv
}

func paymentCommand(t *testing.T, invoiceID kernel.UUID, amount int64) commands.RecordPaymentCommand {
	t.Helper()
	cmd, err := commands.NewRecordPaymentCommand(
		invoiceID, kernel.NewUUID(), kernel.NewMoneyFromInt(amount),
		time.Now(), invoice.BankTransfer, "", "TRX-991")
	require.NoError(t, err)
	return cmd
}

func TestRecordPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	inv := openInvoice(t)
	cmd := paymentCommand(t, inv.ID(), 3_000_000)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetForUpdate", ctx, inv.ID()).Return(inv, nil).Once(),
		invoiceRepo.On("AddPayment", ctx, mock.AnythingOfType("*invoice.Payment")).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	assert.Equal(t, invoice.Partial, inv.Status())
	assert.True(t, inv.PaidAmount().IsEqual(kernel.NewMoneyFromInt(3_000_000)))

	added := invoiceRepo.Calls[1].Arguments[1].(*invoice.Payment)
	assert.True(t, added.Amount().IsEqual(kernel.NewMoneyFromInt(3_000_000)))
	assert.Equal(t, inv.ID(), added.InvoiceID())
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_Overpayment(t *testing.T) {
	ctx := t.Context()
	inv := openInvoice(t)
	cmd := paymentCommand(t, inv.ID(), 7_000_000)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetForUpdate", ctx, inv.ID()).Return(inv, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOverpayment)
	assert.True(t, inv.PaidAmount().IsZero())
	invoiceRepo.AssertNotCalled(t, "AddPayment", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRecordPaymentCommandHandler_Handle_CancelledInvoice(t *testing.T) {
	ctx := t.Context()
	inv := openInvoice(t)
	require.NoError(t, inv.Cancel("billing dispute"))
	cmd := paymentCommand(t, inv.ID(), 1_000)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetForUpdate", ctx, inv.ID()).Return(inv, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvoiceNotPayable)
}

func TestRecordPaymentCommandHandler_Handle_InvoiceNotFound(t *testing.T) {
	ctx := t.Context()
	invoiceID := kernel.NewUUID()
	cmd := paymentCommand(t, invoiceID, 1_000)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetForUpdate", ctx, invoiceID).
			Return(nil, errs.NewObjectNotFoundError("invoiceId", invoiceID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewRecordPaymentCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroMoney(),
		time.Now(), invoice.Cash, "", "")
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}
