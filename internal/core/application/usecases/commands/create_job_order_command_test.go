package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateJobOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateJobOrderCommand(
		id, joborder.FTL,
		decimal.NewFromInt(1200), decimal.NewFromInt(8), 40,
		kernel.NewMoneyFromInt(5_000_000))
	require.NoError(t, err)
	assert.Equal(t, id, cmd.JobOrderID())
	assert.Equal(t, joborder.FTL, cmd.OrderType())
	assert.Equal(t, 40, cmd.Quantity())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateJobOrderCommand_InvalidJobOrderID(t *testing.T) {
	_, err := commands.NewCreateJobOrderCommand(
		kernel.UUID{}, joborder.LTL,
		decimal.NewFromInt(100), decimal.NewFromInt(1), 1,
		kernel.NewMoneyFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateJobOrderCommand_UnknownOrderType(t *testing.T) {
	_, err := commands.NewCreateJobOrderCommand(
		kernel.NewUUID(), joborder.UnknownType,
		decimal.NewFromInt(100), decimal.NewFromInt(1), 1,
		kernel.NewMoneyFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateJobOrderCommand_InvalidGoods(t *testing.T) {
	_, err := commands.NewCreateJobOrderCommand(
		kernel.NewUUID(), joborder.LTL,
		decimal.NewFromInt(-1), decimal.NewFromInt(1), 0,
		kernel.NewMoneyFromInt(1))
	require.Error(t, err)
}

func TestNewCreateJobOrderCommand_NegativeOrderValue(t *testing.T) {
	_, err := commands.NewCreateJobOrderCommand(
		kernel.NewUUID(), joborder.LTL,
		decimal.NewFromInt(100), decimal.NewFromInt(1), 1,
		kernel.NewMoneyFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateJobOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateJobOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateJobOrderCommandIsNotConstructed)
}
