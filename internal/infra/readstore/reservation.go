package readstore

import (
	"context"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const findReservationByIDSQL = `
SELECT r.id, r.guest_id, g.name, r.room_id, rm.number,
       r.check_in, r.check_out, r.occupants, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN guests g ON g.id = r.guest_id
JOIN rooms rm ON rm.id = r.room_id
WHERE r.id = $1
`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view     queries.ReservationView
		checkIn  time.Time
		checkOut time.Time
	)
	err := r.db.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&view.ID, &view.GuestID, &view.GuestName, &view.RoomID, &view.RoomNumber,
		&checkIn, &checkOut, &view.Occupants, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	view.CheckIn = checkIn.Format(time.DateOnly)
	view.CheckOut = checkOut.Format(time.DateOnly)

	payments, err := r.loadPaymentViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Payments = payments

	extras, err := r.loadExtraChargeViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Extras = extras

	return &view, nil
}

const listReservationsSQL = `
SELECT r.id, r.guest_id, g.name, r.room_id, rm.number,
       r.check_in, r.check_out, r.status, r.created_at
FROM reservations r
JOIN guests g ON g.id = r.guest_id
JOIN rooms rm ON rm.id = r.room_id
WHERE ($1::uuid IS NULL OR r.guest_id = $1)
  AND ($2::uuid IS NULL OR r.room_id = $2)
  AND ($3::text IS NULL OR r.status = $3)
ORDER BY r.check_in DESC, r.created_at DESC
`

func (r *ReservationReadStore) List(ctx context.Context, guestID, roomID *uuid.UUID, status *string) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, listReservationsSQL, guestID, roomID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item     queries.ReservationListItem
			checkIn  time.Time
			checkOut time.Time
		)
		err := rows.Scan(
			&item.ID, &item.GuestID, &item.GuestName, &item.RoomID, &item.RoomNumber,
			&checkIn, &checkOut, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.CheckIn = checkIn.Format(time.DateOnly)
		item.CheckOut = checkOut.Format(time.DateOnly)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

// Availability uses half-open overlap over blocking statuses only.
const hasBlockingOverlapSQL = `
SELECT EXISTS (
  SELECT 1
  FROM reservations
  WHERE room_id = $1
    AND status IN ('CONFIRMED', 'CHECKIN')
    AND check_in < $3
    AND check_out > $2
)
`

func (r *ReservationReadStore) HasBlockingOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasBlockingOverlapSQL, roomID, checkIn, checkOut).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check room availability", err)
	}
	return exists, nil
}

const findBillingSourceSQL = `
SELECT r.id, r.status, r.check_in, r.check_out, rm.base_rate_cents,
       COALESCE((SELECT sum(amount_cents) FROM extra_charges WHERE reservation_id = r.id), 0),
       COALESCE((SELECT sum(amount_cents) FROM payments WHERE reservation_id = r.id), 0)
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
WHERE r.id = $1
`

func (r *ReservationReadStore) FindBillingSource(ctx context.Context, id uuid.UUID) (*queries.BillingSource, error) {
	var (
		src           queries.BillingSource
		status        string
		checkIn       time.Time
		checkOut      time.Time
		baseRateCents int64
		extrasCents   int64
		paidCents     int64
	)
	err := r.db.QueryRow(ctx, findBillingSourceSQL, id).Scan(
		&src.ReservationID, &status, &checkIn, &checkOut, &baseRateCents, &extrasCents, &paidCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find billing source", err)
	}
	src.Status = reservation.Status(status)
	src.Stay = reservation.ReconstructStayRange(checkIn, checkOut)
	src.BaseRate = money.NewMoney(baseRateCents)
	src.ExtrasTotal = money.NewMoney(extrasCents)
	src.TotalPaid = money.NewMoney(paidCents)
	return &src, nil
}

const listPaymentViewsSQL = `
SELECT id, method, amount_cents, paid_at
FROM payments
WHERE reservation_id = $1
ORDER BY created_at
`

func (r *ReservationReadStore) loadPaymentViews(ctx context.Context, reservationID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := r.db.Query(ctx, listPaymentViewsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payments", err)
	}
	defer rows.Close()

	payments := []queries.PaymentView{}
	for rows.Next() {
		var (
			view        queries.PaymentView
			amountCents int64
			paidAt      time.Time
		)
		if err := rows.Scan(&view.ID, &view.Method, &amountCents, &paidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		view.Amount = money.NewMoney(amountCents).Float64()
		view.PaidAt = paidAt.Format(time.DateOnly)
		payments = append(payments, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return payments, nil
}

const listExtraChargeViewsSQL = `
SELECT id, description, amount_cents
FROM extra_charges
WHERE reservation_id = $1
ORDER BY created_at
`

func (r *ReservationReadStore) loadExtraChargeViews(ctx context.Context, reservationID uuid.UUID) ([]queries.ExtraChargeView, error) {
	rows, err := r.db.Query(ctx, listExtraChargeViewsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load extra charges", err)
	}
	defer rows.Close()

	extras := []queries.ExtraChargeView{}
	for rows.Next() {
		var (
			view        queries.ExtraChargeView
			amountCents int64
		)
		if err := rows.Scan(&view.ID, &view.Description, &amountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra charge row", err)
		}
		view.Amount = money.NewMoney(amountCents).Float64()
		extras = append(extras, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra charges", err)
	}
	return extras, nil
}
