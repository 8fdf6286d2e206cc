package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable decimal monetary amount. All ledger arithmetic goes
// through this type so that subtotal/tax/total/paid computations are exact;
// binary floating point is never used for financial amounts.
//
// The zero value is a valid zero amount. Money carries no currency; the
// system operates in a single ledger currency.
//
// Example:
//
//	subtotal, _ := kernel.NewMoneyFromString("6000000")
//	tax := subtotal.ApplyTaxRate(decimal.NewFromInt(11))
//	total := subtotal.Add(tax)
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a decimal string such as "6660000" or "1250.50".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromInt creates a Money from an integer amount of currency units.
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of m and other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// ApplyTaxRate returns m * ratePercent / 100.
func (m Money) ApplyTaxRate(ratePercent decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(ratePercent).Div(decimal.NewFromInt(100))}
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Decimal returns the underlying decimal value for persistence and
// serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation, e.g. "6660000".
func (m Money) String() string {
	return m.amount.String()
}

// ValidatePositive returns an error unless the amount is strictly positive.
// Used for payment amounts, which must be greater than zero.
func (m Money) ValidatePositive(paramName string) error {
	if !m.amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not greater than 0", m.amount))
	}
	return nil
}
