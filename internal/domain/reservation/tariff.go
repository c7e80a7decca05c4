package reservation

import (
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/pkg/config"
)

// Tariff computes stay prices from a base nightly rate. Weekend and season
// multipliers compose multiplicatively per night. The type is pure: checkout
// billing and reporting both price through the same nightly loop so the two
// can never diverge in rounding or multiplier order.
type Tariff struct {
	weekendMultiplier float64
	seasonMultiplier  float64
	highSeasonMonths  map[time.Month]struct{}
	penaltyPercent    float64
}

func NewTariff(cfg config.PricingConfig) Tariff {
	months := make(map[time.Month]struct{}, len(cfg.HighSeasonMonths))
	for _, m := range cfg.HighSeasonMonths {
		if m >= 1 && m <= 12 {
			months[time.Month(m)] = struct{}{}
		}
	}
	return Tariff{
		weekendMultiplier: cfg.WeekendMultiplier,
		seasonMultiplier:  cfg.SeasonMultiplier,
		highSeasonMonths:  months,
		penaltyPercent:    cfg.CancelPenaltyPercent,
	}
}

// StayPrice sums the nightly rate over [checkIn, checkOut) and rounds the
// total to two decimal places. A zero-night range prices to zero.
func (t Tariff) StayPrice(baseRate money.Money, stay StayRange) money.Money {
	total := 0.0
	for day := stay.CheckIn(); day.Before(stay.CheckOut()); day = day.AddDate(0, 0, 1) {
		total += t.nightlyRate(baseRate, day)
	}
	return money.FromFloat(total)
}

// NightPrice prices a single night, the unit used by the reporting walk.
func (t Tariff) NightPrice(baseRate money.Money, night time.Time) money.Money {
	return money.FromFloat(t.nightlyRate(baseRate, night))
}

// CancelPenalty is the late-cancellation charge: the configured percentage of
// the full stay price.
func (t Tariff) CancelPenalty(baseRate money.Money, stay StayRange) money.Money {
	full := t.StayPrice(baseRate, stay)
	return money.FromFloat(full.Float64() * t.penaltyPercent / 100.0)
}

func (t Tariff) nightlyRate(baseRate money.Money, night time.Time) float64 {
	rate := baseRate.Float64()
	if wd := night.Weekday(); wd == time.Saturday || wd == time.Sunday {
		rate *= t.weekendMultiplier
	}
	if _, ok := t.highSeasonMonths[night.Month()]; ok {
		rate *= t.seasonMultiplier
	}
	return rate
}
