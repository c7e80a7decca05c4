//go:build unit

package reporting_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reporting"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(t *testing.T, checkIn, checkOut time.Time, status reservation.Status, rate float64) reporting.StayRecord {
	t.Helper()
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return reporting.StayRecord{
		Stay:     stay,
		Status:   status,
		BaseRate: money.FromFloat(rate),
	}
}

func TestNewPeriod(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := reporting.NewPeriod(day(2026, 3, 10), day(2026, 3, 1))
		assert.ErrorIs(t, err, reporting.ErrInvalidRange)

		_, err = reporting.NewPeriod(day(2026, 3, 1), day(2026, 3, 1))
		assert.ErrorIs(t, err, reporting.ErrInvalidRange)
	})

	t.Run("days counts the half-open range", func(t *testing.T) {
		p, err := reporting.NewPeriod(day(2026, 3, 1), day(2026, 3, 8))
		require.NoError(t, err)
		assert.Equal(t, 7, p.Days())
	})
}

func TestAggregate(t *testing.T) {
	tariff := reservation.NewTariff(config.NewTestConfig().Pricing)

	period := func(t *testing.T, start, end time.Time) reporting.Period {
		t.Helper()
		p, err := reporting.NewPeriod(start, end)
		require.NoError(t, err)
		return p
	}

	t.Run("empty hotel reports zeros without dividing", func(t *testing.T) {
		p := period(t, day(2026, 3, 1), day(2026, 3, 8))

		summary := reporting.Aggregate(p, 0, nil, tariff)
		assert.Equal(t, 0, summary.NightsSold)
		assert.Zero(t, summary.OccupancyRate)
		assert.True(t, summary.ADR.IsZero())
		assert.True(t, summary.RevPAR.IsZero())
	})

	t.Run("occupancy and revenue over weekday nights", func(t *testing.T) {
		// Mon 2026-03-02 to Fri 2026-03-06, 10 rooms
		p := period(t, day(2026, 3, 2), day(2026, 3, 6))

		records := []reporting.StayRecord{
			record(t, day(2026, 3, 2), day(2026, 3, 6), reservation.StatusCheckOut, 100.00),
			record(t, day(2026, 3, 3), day(2026, 3, 5), reservation.StatusCheckIn, 200.00),
		}

		summary := reporting.Aggregate(p, 10, records, tariff)
		assert.Equal(t, 6, summary.NightsSold)
		assert.Equal(t, money.FromFloat(800.00), summary.Revenue)
		assert.InDelta(t, 15.0, summary.OccupancyRate, 0.0001)
		// 800 / 6 nights
		assert.Equal(t, money.FromFloat(133.33), summary.ADR)
		// 800 / 40 available nights
		assert.Equal(t, money.FromFloat(20.00), summary.RevPAR)
	})

	t.Run("stays are clipped to the period", func(t *testing.T) {
		p := period(t, day(2026, 3, 2), day(2026, 3, 4))

		records := []reporting.StayRecord{
			// Covers the whole period and beyond; only 2 nights count
			record(t, day(2026, 2, 25), day(2026, 3, 10), reservation.StatusConfirmed, 100.00),
		}

		summary := reporting.Aggregate(p, 1, records, tariff)
		assert.Equal(t, 2, summary.NightsSold)
		assert.Equal(t, money.FromFloat(200.00), summary.Revenue)
	})

	t.Run("revenue uses the nightly tariff", func(t *testing.T) {
		// Fri 2026-03-06 to Sun 2026-03-08: Fri 100 + Sat 120
		p := period(t, day(2026, 3, 6), day(2026, 3, 8))

		records := []reporting.StayRecord{
			record(t, day(2026, 3, 6), day(2026, 3, 8), reservation.StatusCheckOut, 100.00),
		}

		summary := reporting.Aggregate(p, 1, records, tariff)
		assert.Equal(t, money.FromFloat(220.00), summary.Revenue)
	})

	t.Run("canceled and no-show stays earn nothing but are counted", func(t *testing.T) {
		p := period(t, day(2026, 3, 2), day(2026, 3, 9))

		records := []reporting.StayRecord{
			record(t, day(2026, 3, 3), day(2026, 3, 5), reservation.StatusCanceled, 100.00),
			record(t, day(2026, 3, 4), day(2026, 3, 6), reservation.StatusNoShow, 100.00),
			// Check-in outside the period: not counted
			record(t, day(2026, 3, 1), day(2026, 3, 4), reservation.StatusCanceled, 100.00),
		}

		summary := reporting.Aggregate(p, 5, records, tariff)
		assert.Equal(t, 1, summary.Cancellations)
		assert.Equal(t, 1, summary.NoShows)
		assert.Equal(t, 0, summary.NightsSold)
		assert.True(t, summary.Revenue.IsZero())
	})
}
