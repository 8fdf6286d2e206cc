package joborder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGoodsAreNotConstructed is returned when Goods was not created through
// NewGoods.
var ErrGoodsAreNotConstructed = errs.NewValueIsRequiredError(
	"Goods must be created via NewGoods")

// Goods is a value object holding the shipment metrics of a job order:
// weight in kilograms, volume in cubic meters, and piece count.
type Goods struct {
	weightKg decimal.Decimal
	volumeM3 decimal.Decimal
	quantity int

	guard guard.ConstructorGuard
}

// NewGoods creates validated goods metrics. Weight and volume must be
// non-negative; quantity must be positive.
func NewGoods(weightKg, volumeM3 decimal.Decimal, quantity int) (Goods, error) {
	if weightKg.IsNegative() {
		return Goods{}, errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%s is negative", weightKg))
	}
	if volumeM3.IsNegative() {
		return Goods{}, errs.NewValueIsInvalidErrorWithCause("volumeM3",
			fmt.Errorf("%s is negative", volumeM3))
	}
	if quantity <= 0 {
		return Goods{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Goods{
		weightKg: weightKg,
		volumeM3: volumeM3,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the goods were created through NewGoods.
func (g Goods) Validate() error {
	return g.guard.Validate(ErrGoodsAreNotConstructed)
}

// WeightKg returns the total weight in kilograms.
func (g Goods) WeightKg() decimal.Decimal {
	return g.weightKg
}

// VolumeM3 returns the total volume in cubic meters.
func (g Goods) VolumeM3() decimal.Decimal {
	return g.volumeM3
}

// Quantity returns the piece count.
func (g Goods) Quantity() int {
	return g.quantity
}
