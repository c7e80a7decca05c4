package repository

import (
	"context"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const createReservationSQL = `
INSERT INTO reservations (id, guest_id, room_id, check_in, check_out, occupants, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(), res.GuestID(), res.RoomID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		res.Occupants(), res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

const findReservationForUpdateSQL = `
SELECT id, guest_id, room_id, check_in, check_out, occupants, status, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE
`

const listPaymentsSQL = `
SELECT method, amount_cents, paid_at
FROM payments
WHERE reservation_id = $1
ORDER BY created_at
`

const listExtraChargesSQL = `
SELECT description, amount_cents
FROM extra_charges
WHERE reservation_id = $1
ORDER BY created_at
`

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		guestID   uuid.UUID
		roomID    uuid.UUID
		checkIn   time.Time
		checkOut  time.Time
		occupants int
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	err := tx.QueryRow(ctx, findReservationForUpdateSQL, id).Scan(
		&id, &guestID, &roomID, &checkIn, &checkOut, &occupants, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	payments, err := r.loadPayments(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	extras, err := r.loadExtraCharges(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, guestID, roomID,
		reservation.ReconstructStayRange(checkIn, checkOut),
		occupants, reservation.Status(status),
		payments, extras,
		createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) loadPayments(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]reservation.Payment, error) {
	rows, err := tx.Query(ctx, listPaymentsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payments", err)
	}
	defer rows.Close()

	var payments []reservation.Payment
	for rows.Next() {
		var (
			method      string
			amountCents int64
			paidAt      time.Time
		)
		if err := rows.Scan(&method, &amountCents, &paidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		payments = append(payments, reservation.ReconstructPayment(method, money.NewMoney(amountCents), paidAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return payments, nil
}

func (r *ReservationRepository) loadExtraCharges(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]reservation.ExtraCharge, error) {
	rows, err := tx.Query(ctx, listExtraChargesSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load extra charges", err)
	}
	defer rows.Close()

	var extras []reservation.ExtraCharge
	for rows.Next() {
		var (
			description string
			amountCents int64
		)
		if err := rows.Scan(&description, &amountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra charge", err)
		}
		extras = append(extras, reservation.ReconstructExtraCharge(description, money.NewMoney(amountCents)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra charges", err)
	}
	return extras, nil
}

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1
`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

const addPaymentSQL = `
INSERT INTO payments (id, reservation_id, method, amount_cents, paid_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *ReservationRepository) AddPayment(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, p reservation.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, addPaymentSQL,
		uuid.New(), reservationID, p.Method(), p.Amount().Cents(), p.PaidAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add payment", err)
	}
	return id, nil
}

const addExtraChargeSQL = `
INSERT INTO extra_charges (id, reservation_id, description, amount_cents)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (r *ReservationRepository) AddExtraCharge(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, c reservation.ExtraCharge) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, addExtraChargeSQL,
		uuid.New(), reservationID, c.Description(), c.Amount().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add extra charge", err)
	}
	return id, nil
}

const findDueNoShowSQL = `
SELECT id
FROM reservations
WHERE status = 'CONFIRMED' AND check_in < $1
ORDER BY check_in
FOR UPDATE
`

func (r *ReservationRepository) FindDueNoShowIDs(ctx context.Context, tx db.DBTX, before time.Time) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, findDueNoShowSQL, before)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due no-show reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return ids, nil
}
