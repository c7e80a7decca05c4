package queries

import (
	"context"
	"time"

	"innkeeper/internal/domain/reporting"
	"innkeeper/internal/domain/reservation"
)

type ReportQueries interface {
	OccupancyReport(ctx context.Context, start, end time.Time) (*OccupancyReportView, error)
}

type StayRecordRepo interface {
	FindStayRecords(ctx context.Context, start, end time.Time) ([]reporting.StayRecord, error)
}

type RoomCounter interface {
	Count(ctx context.Context) (int, error)
}

type reportQueriesImpl struct {
	stays  StayRecordRepo
	rooms  RoomCounter
	tariff reservation.Tariff
}

func NewReportQueries(stays StayRecordRepo, rooms RoomCounter, tariff reservation.Tariff) ReportQueries {
	return &reportQueriesImpl{stays: stays, rooms: rooms, tariff: tariff}
}

func (q *reportQueriesImpl) OccupancyReport(ctx context.Context, start, end time.Time) (*OccupancyReportView, error) {
	period, err := reporting.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	totalRooms, err := q.rooms.Count(ctx)
	if err != nil {
		return nil, err
	}

	records, err := q.stays.FindStayRecords(ctx, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	summary := reporting.Aggregate(period, totalRooms, records, q.tariff)

	return &OccupancyReportView{
		PeriodStart:   summary.PeriodStart,
		PeriodEnd:     summary.PeriodEnd,
		TotalRooms:    summary.TotalRooms,
		Days:          summary.Days,
		NightsSold:    summary.NightsSold,
		Revenue:       summary.Revenue.Float64(),
		OccupancyRate: summary.OccupancyRate,
		ADR:           summary.ADR.Float64(),
		RevPAR:        summary.RevPAR.Float64(),
		Cancellations: summary.Cancellations,
		NoShows:       summary.NoShows,
	}, nil
}
