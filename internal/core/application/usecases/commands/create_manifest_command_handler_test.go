package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildJobOrder(t *testing.T, orderType joborder.OrderType) *joborder.JobOrder {
	t.Helper()
	goods, err := joborder.NewGoods(decimal.NewFromInt(800), decimal.NewFromInt(5), 20)
	require.NoError(t, err)
	jo, err := joborder.NewJobOrder(
		kernel.NewUUID(), orderType, goods, kernel.NewMoneyFromInt(2_000_000))
	require.NoError(t, err)
	return jo
}

func TestCreateManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	jo1 := buildJobOrder(t, joborder.LTL)
	jo2 := buildJobOrder(t, joborder.LTL)
	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), []kernel.UUID{jo1.ID(), jo2.ID()}, "DRV-1", "VEH-1")
	require.NoError(t, err)

	jobOrderRepo := new(MockJobOrderRepository)
	manifestRepo := new(MockManifestRepository)
	uow := new(MockManifestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("GetMany", ctx, cmd.JobOrderIDs()).
			Return([]*joborder.JobOrder{jo1, jo2}, nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("Add", ctx, mock.AnythingOfType("*manifest.Manifest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := manifestRepo.Calls[0].Arguments[1].(*manifest.Manifest)
	assert.True(t, added.HasTransport())
	assert.Equal(t, "DRV-1", added.DriverID())
	assert.True(t, added.HasJobOrder(jo1.ID()))
	assert.True(t, added.HasJobOrder(jo2.ID()))
	manifestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateManifestCommandHandler_Handle_FTLCannotShare(t *testing.T) {
	ctx := t.Context()

	ftl := buildJobOrder(t, joborder.FTL)
	ltl := buildJobOrder(t, joborder.LTL)
	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), []kernel.UUID{ftl.ID(), ltl.ID()}, "", "")
	require.NoError(t, err)

	jobOrderRepo := new(MockJobOrderRepository)
	uow := new(MockManifestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("GetMany", ctx, cmd.JobOrderIDs()).
			Return([]*joborder.JobOrder{ftl, ltl}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrGroupingConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateManifestCommandHandler_Handle_CancelledMemberRejected(t *testing.T) {
	ctx := t.Context()

	jo := buildJobOrder(t, joborder.LTL)
	require.NoError(t, jo.Cancel())
	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), []kernel.UUID{jo.ID()}, "", "")
	require.NoError(t, err)

	jobOrderRepo := new(MockJobOrderRepository)
	uow := new(MockManifestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("GetMany", ctx, cmd.JobOrderIDs()).
			Return([]*joborder.JobOrder{jo}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrGroupingConflict)
}

func TestCreateManifestCommandHandler_Handle_MissingMember(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateManifestCommand(
		kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, "", "")
	require.NoError(t, err)

	jobOrderRepo := new(MockJobOrderRepository)
	uow := new(MockManifestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobOrderRepository").Return(jobOrderRepo).Once(),
		jobOrderRepo.On("GetMany", ctx, cmd.JobOrderIDs()).
			Return(nil, errs.NewObjectNotFoundError("jobOrderId", cmd.JobOrderIDs()[0])).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCreateManifestCommand_InvalidSelection(t *testing.T) {
	_, err := commands.NewCreateManifestCommand(kernel.NewUUID(), nil, "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	dup := kernel.NewUUID()
	_, err = commands.NewCreateManifestCommand(
		kernel.NewUUID(), []kernel.UUID{dup, dup}, "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateManifestCommand(
		kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, "DRV-1", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
