// Package money wraps shopspring/decimal so pricing arithmetic never goes
// through binary floating point. Amounts keep full precision internally;
// Rounded is for display and for the persisted booking/receipt totals.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func FromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d}, nil
}

func FromFloat(f float64) (Money, error) {
	return FromDecimal(decimal.NewFromFloat(f))
}

// MustFromFloat is for constants and tests where the value is known valid.
func MustFromFloat(f float64) Money {
	m, err := FromFloat(f)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Mul(d decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(d)}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Rounded returns the amount at 2 decimal places.
func (m Money) Rounded() decimal.Decimal {
	return m.amount.Round(2)
}

// Float64 is lossy and exists only for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.Rounded().Float64()
	return f
}

func (m Money) String() string {
	return m.Rounded().StringFixed(2)
}
