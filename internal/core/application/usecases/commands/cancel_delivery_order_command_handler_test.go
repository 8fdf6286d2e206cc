package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingDeliveryOrder(t *testing.T) *deliveryorder.DeliveryOrder {
	t.Helper()
	source, err := deliveryorder.NewJobOrderSource(kernel.NewUUID())
	require.NoError(t, err)
	do, err := deliveryorder.NewDeliveryOrder(
		kernel.NewUUID(), source, "DRV-7", "VEH-12",
		deliveryorder.Normal, "ambient", deliveryorder.Schedule{DODate: testDODate})
	require.NoError(t, err)
	return do
}

func TestCancelDeliveryOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	do := pendingDeliveryOrder(t)
	cmd, err := commands.NewCancelDeliveryOrderCommand(do.ID(), "vehicle breakdown")
	require.NoError(t, err)

	deliveryOrderRepo := new(MockDeliveryOrderRepository)
	claimRepo := new(MockSourceClaimRepository)
	uow := new(MockDeliveryOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(deliveryOrderRepo).Once(),
		deliveryOrderRepo.On("Get", ctx, do.ID()).Return(do, nil).Once(),
		deliveryOrderRepo.On("Update", ctx, mock.AnythingOfType("*deliveryorder.DeliveryOrder")).
			Return(nil).Once(),
		uow.On("SourceClaimRepository").Return(claimRepo).Once(),
		claimRepo.On("Release", ctx, do.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, deliveryorder.Cancelled, do.Status())
	assert.Equal(t, "vehicle breakdown", do.CancellationReason())
	claimRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelDeliveryOrderCommandHandler_Handle_DeliveredRejected(t *testing.T) {
	ctx := t.Context()
	do := pendingDeliveryOrder(t)
	require.NoError(t, do.Advance(deliveryorder.InTransit, time.Now()))
	require.NoError(t, do.Advance(deliveryorder.Delivered, time.Now()))

	cmd, err := commands.NewCancelDeliveryOrderCommand(do.ID(), "too late")
	require.NoError(t, err)

	deliveryOrderRepo := new(MockDeliveryOrderRepository)
	uow := new(MockDeliveryOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryOrderRepository").Return(deliveryOrderRepo).Once(),
		deliveryOrderRepo.On("Get", ctx, do.ID()).Return(do, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCancellationNotAllowed)
	uow.AssertNotCalled(t, "SourceClaimRepository")
}

func TestNewCancelDeliveryOrderCommand_ReasonRequired(t *testing.T) {
	_, err := commands.NewCancelDeliveryOrderCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
