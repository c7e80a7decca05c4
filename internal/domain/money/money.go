package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrNonPositiveAmount = errors.New("amount must be positive")

// Money is an amount in cents. Tariff math happens in float64 and is rounded
// to cents at the boundary, matching two-decimal billing totals.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// FromFloat rounds a decimal amount to cents.
func FromFloat(v float64) Money {
	return Money{cents: int64(math.Round(v * 100))}
}

// NewPositiveAmount validates monetary input at the API boundary.
func NewPositiveAmount(v float64) (Money, error) {
	if v <= 0 {
		return Money{}, ErrNonPositiveAmount
	}
	return FromFloat(v), nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Float64() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
