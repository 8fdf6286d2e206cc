package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateJobOrderCommand(t *testing.T) commands.CreateJobOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateJobOrderCommand(
		kernel.NewUUID(), joborder.LTL,
		decimal.NewFromInt(500), decimal.NewFromInt(3), 10,
		kernel.NewMoneyFromInt(1_000_000))
	require.NoError(t, err)
	return cmd
}

func TestCreateJobOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateJobOrderCommand(t)

	jobOrderRepo := new(MockJobOrderRepository)
	uow := new(MockJobOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("Add", ctx, mock.AnythingOfType("*joborder.JobOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	jobOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateJobOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateJobOrderCommand{} // not constructed properly

	factory := new(MockJobOrderUoWFactory)
	handler := commands.NewCreateJobOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateJobOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateJobOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateJobOrderCommand(t)

	jobOrderRepo := new(MockJobOrderRepository)
	uow := new(MockJobOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("Add", ctx, mock.AnythingOfType("*joborder.JobOrder")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateJobOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateJobOrderCommand(t)

	jobOrderRepo := new(MockJobOrderRepository)
	uow := new(MockJobOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("Add", ctx, mock.AnythingOfType("*joborder.JobOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
