package kernel

import (
	"fmt"

	"eats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for fixed-point monetary amounts with two
// fractional digits. It wraps decimal.Decimal so arithmetic never loses
// precision, and normalizes every amount to 2 decimal places on
// construction.
//
// Money is immutable: arithmetic methods return new values. The zero value
// is a valid zero amount, which keeps aggregates that start at 0.00 simple
// to construct.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	total := price.MulInt(2).Add(kernel.MustMoneyFromString("5.00"))
//	fmt.Println(total) // 25.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal, rejecting negative amounts and
// rounding to 2 fractional digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.Round(2)}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoneyFromString is MoneyFromString that panics on error.
// Intended for tests and constants.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
