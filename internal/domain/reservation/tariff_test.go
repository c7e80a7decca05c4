//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) reservation.StayRange {
	t.Helper()
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestNightPrice(t *testing.T) {
	tariff := reservation.NewTariff(config.NewTestConfig().Pricing)
	base := money.FromFloat(100.00)

	cases := []struct {
		name  string
		night time.Time
		want  float64
	}{
		// 2026-03-02 is a Monday in an off-season month
		{name: "weekday off-season is the base rate", night: day(2026, 3, 2), want: 100.00},
		{name: "saturday applies the weekend multiplier", night: day(2026, 3, 7), want: 120.00},
		{name: "sunday applies the weekend multiplier", night: day(2026, 3, 8), want: 120.00},
		{name: "december weekday applies the season multiplier", night: day(2026, 12, 7), want: 150.00},
		{name: "january weekday applies the season multiplier", night: day(2026, 1, 5), want: 150.00},
		{name: "july weekday applies the season multiplier", night: day(2026, 7, 1), want: 150.00},
		{name: "weekend in high season stacks both multipliers", night: day(2026, 12, 5), want: 180.00},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, money.FromFloat(c.want), tariff.NightPrice(base, c.night))
		})
	}
}

func TestStayPrice(t *testing.T) {
	tariff := reservation.NewTariff(config.NewTestConfig().Pricing)
	base := money.FromFloat(100.00)

	t.Run("sums nightly rates over the half-open range", func(t *testing.T) {
		// Fri 2026-03-06 to Mon 2026-03-09: Fri 100 + Sat 120 + Sun 120
		stay := mustStay(t, day(2026, 3, 6), day(2026, 3, 9))
		assert.Equal(t, money.FromFloat(340.00), tariff.StayPrice(base, stay))
	})

	t.Run("checkout night is never billed", func(t *testing.T) {
		// Thu to Sat: only Thu and Fri nights, Saturday is checkout
		stay := mustStay(t, day(2026, 3, 5), day(2026, 3, 7))
		assert.Equal(t, money.FromFloat(200.00), tariff.StayPrice(base, stay))
	})

	t.Run("stay spanning a season boundary prices per night", func(t *testing.T) {
		// Mon 2026-11-30 (base) + Tue 2026-12-01 (high season)
		stay := mustStay(t, day(2026, 11, 30), day(2026, 12, 2))
		assert.Equal(t, money.FromFloat(250.00), tariff.StayPrice(base, stay))
	})

	t.Run("fractional rates round to cents", func(t *testing.T) {
		// 99.99 * 1.2 = 119.988 per weekend night
		stay := mustStay(t, day(2026, 3, 7), day(2026, 3, 8))
		assert.Equal(t, int64(11999), tariff.StayPrice(money.FromFloat(99.99), stay).Cents())
	})
}

func TestCancelPenalty(t *testing.T) {
	tariff := reservation.NewTariff(config.NewTestConfig().Pricing)
	base := money.FromFloat(100.00)

	t.Run("penalty is half the stay price", func(t *testing.T) {
		stay := mustStay(t, day(2026, 3, 2), day(2026, 3, 4))
		assert.Equal(t, money.FromFloat(100.00), tariff.CancelPenalty(base, stay))
	})

	t.Run("penalty follows multiplied rates", func(t *testing.T) {
		// One Saturday night in December: 100 * 1.2 * 1.5 = 180, penalty 90
		stay := mustStay(t, day(2026, 12, 5), day(2026, 12, 6))
		assert.Equal(t, money.FromFloat(90.00), tariff.CancelPenalty(base, stay))
	})
}
