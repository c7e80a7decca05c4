package readstore

import (
	"context"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reporting"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

// Rows feeding the occupancy aggregator: stays overlapping the period earn
// revenue, canceled and no-show stays starting inside it feed the counters.
const findStayRecordsSQL = `
SELECT r.check_in, r.check_out, r.status, rm.base_rate_cents
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
WHERE (r.check_in < $2 AND r.check_out > $1)
   OR (r.status IN ('CANCELED', 'NO_SHOW') AND r.check_in >= $1 AND r.check_in < $2)
`

func (r *ReportReadStore) FindStayRecords(ctx context.Context, start, end time.Time) ([]reporting.StayRecord, error) {
	rows, err := r.db.Query(ctx, findStayRecordsSQL, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stay records", err)
	}
	defer rows.Close()

	var records []reporting.StayRecord
	for rows.Next() {
		var (
			checkIn       time.Time
			checkOut      time.Time
			status        string
			baseRateCents int64
		)
		if err := rows.Scan(&checkIn, &checkOut, &status, &baseRateCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay record", err)
		}
		records = append(records, reporting.StayRecord{
			Stay:     reservation.ReconstructStayRange(checkIn, checkOut),
			Status:   reservation.Status(status),
			BaseRate: money.NewMoney(baseRateCents),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stay records", err)
	}
	return records, nil
}
