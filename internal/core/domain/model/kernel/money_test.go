package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses_integer_amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("6660000")

		require.NoError(t, err)
		assert.Equal(t, "6660000", m.String())
	})

	t.Run("parses_fractional_amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("1250.50")

		require.NoError(t, err)
		assert.Equal(t, "1250.5", m.String())
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_and_sub_are_exact", func(t *testing.T) {
		a := kernel.NewMoneyFromInt(2_000_000)
		b := kernel.NewMoneyFromInt(4_660_000)

		sum := a.Add(b)
		assert.True(t, sum.IsEqual(kernel.NewMoneyFromInt(6_660_000)))
		assert.True(t, sum.Sub(b).IsEqual(a))
	})

	t.Run("tax_rate_application", func(t *testing.T) {
		subtotal := kernel.NewMoneyFromInt(6_000_000)

		tax := subtotal.ApplyTaxRate(decimal.NewFromInt(11))

		assert.Equal(t, "660000", tax.String())
		assert.Equal(t, "6660000", subtotal.Add(tax).String())
	})

	t.Run("fractional_rate_stays_exact", func(t *testing.T) {
		subtotal := kernel.NewMoneyFromInt(1000)

		tax := subtotal.ApplyTaxRate(decimal.NewFromFloat(2.5))

		assert.Equal(t, "25", tax.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small := kernel.NewMoneyFromInt(10)
	big := kernel.NewMoneyFromInt(20)

	assert.True(t, big.GreaterThan(small))
	assert.True(t, big.GreaterThanOrEqual(big))
	assert.True(t, small.LessThan(big))
	assert.True(t, kernel.ZeroMoney().IsZero())
	assert.True(t, small.IsPositive())
	assert.True(t, kernel.ZeroMoney().Sub(small).IsNegative())
}

func TestMoney_ValidatePositive(t *testing.T) {
	t.Run("positive_amount_passes", func(t *testing.T) {
		require.NoError(t, kernel.NewMoneyFromInt(1).ValidatePositive("amount"))
	})

	t.Run("zero_amount_fails", func(t *testing.T) {
		err := kernel.ZeroMoney().ValidatePositive("amount")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not greater than 0")
	})

	t.Run("negative_amount_fails", func(t *testing.T) {
		require.Error(t, kernel.NewMoneyFromInt(-5).ValidatePositive("amount"))
	})
}
