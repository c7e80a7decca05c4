//go:build unit

package money_test

import (
	"testing"

	"innkeeper/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	cases := []struct {
		name  string
		in    float64
		cents int64
	}{
		{name: "whole amount", in: 100.00, cents: 10000},
		{name: "two decimals", in: 99.99, cents: 9999},
		{name: "rounds half up", in: 0.005, cents: 1},
		{name: "rounds repeating binary fractions", in: 119.988, cents: 11999},
		{name: "multiplication artifact", in: 100 * 1.2 * 1.5, cents: 18000},
		{name: "zero", in: 0, cents: 0},
		{name: "negative", in: -10.50, cents: -1050},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.cents, money.FromFloat(c.in).Cents())
		})
	}
}

func TestNewPositiveAmount(t *testing.T) {
	t.Run("accepts positive amounts", func(t *testing.T) {
		m, err := money.NewPositiveAmount(42.50)
		require.NoError(t, err)
		assert.Equal(t, int64(4250), m.Cents())
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := money.NewPositiveAmount(0)
		assert.ErrorIs(t, err, money.ErrNonPositiveAmount)
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := money.NewPositiveAmount(-1)
		assert.ErrorIs(t, err, money.ErrNonPositiveAmount)
	})
}

func TestArithmetic(t *testing.T) {
	a := money.FromFloat(10.00)
	b := money.FromFloat(3.50)

	assert.Equal(t, money.FromFloat(13.50), a.Add(b))
	assert.Equal(t, money.FromFloat(6.50), a.Sub(b))
	assert.Equal(t, money.FromFloat(-10.00), a.Neg())
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, a.Sub(a).IsZero())
	assert.Equal(t, 6.5, a.Sub(b).Float64())
}
