package reporting

import (
	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
)

// StayRecord is the slice of a reservation the aggregator needs. Rows come
// from the read store already joined with the room's base rate.
type StayRecord struct {
	Stay     reservation.StayRange
	Status   reservation.Status
	BaseRate money.Money
}

// Summary is the occupancy and revenue report for a period.
//
// OccupancyRate is sold room-nights over available room-nights as a
// percentage. ADR (average daily rate) is revenue per sold night. RevPAR
// (revenue per available room) spreads revenue over every room-night the
// hotel could have sold.
type Summary struct {
	PeriodStart   string
	PeriodEnd     string
	TotalRooms    int
	Days          int
	NightsSold    int
	Revenue       money.Money
	OccupancyRate float64
	ADR           money.Money
	RevPAR        money.Money
	Cancellations int
	NoShows       int
}

// Aggregate walks the period day by day, counting each night a revenue stay
// covers and pricing it through the tariff, so reported revenue uses the same
// nightly math as billing. Canceled and no-show stays earn nothing but are
// counted when their check-in date falls inside the period.
func Aggregate(period Period, totalRooms int, records []StayRecord, tariff reservation.Tariff) Summary {
	days := period.Days()
	nightsSold := 0
	var revenue money.Money
	cancellations := 0
	noShows := 0

	for _, rec := range records {
		switch rec.Status {
		case reservation.StatusCanceled:
			if rec.Stay.StartsWithin(period.Start(), period.End()) {
				cancellations++
			}
			continue
		case reservation.StatusNoShow:
			if rec.Stay.StartsWithin(period.Start(), period.End()) {
				noShows++
			}
			continue
		}

		for day := period.Start(); day.Before(period.End()); day = day.AddDate(0, 0, 1) {
			if !rec.Stay.ContainsDay(day) {
				continue
			}
			nightsSold++
			revenue = revenue.Add(tariff.NightPrice(rec.BaseRate, day))
		}
	}

	availableNights := totalRooms * days

	summary := Summary{
		PeriodStart:   period.Start().Format("2006-01-02"),
		PeriodEnd:     period.End().Format("2006-01-02"),
		TotalRooms:    totalRooms,
		Days:          days,
		NightsSold:    nightsSold,
		Revenue:       revenue,
		Cancellations: cancellations,
		NoShows:       noShows,
	}

	if availableNights > 0 {
		summary.OccupancyRate = float64(nightsSold) / float64(availableNights) * 100
		summary.RevPAR = money.FromFloat(revenue.Float64() / float64(availableNights))
	}
	if nightsSold > 0 {
		summary.ADR = money.FromFloat(revenue.Float64() / float64(nightsSold))
	}

	return summary
}
