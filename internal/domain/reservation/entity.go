package reservation

import (
	"errors"
	"fmt"
	"time"

	"innkeeper/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidOccupants    = errors.New("occupant count must be at least 1")
	ErrCapacityExceeded    = errors.New("occupant count exceeds room capacity")
	ErrInvalidTransition   = errors.New("invalid lifecycle transition")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrReservationClosed   = errors.New("reservation is closed")
	ErrNotYetDue           = errors.New("check-in date has not passed")
)

const lateCancellationDescription = "Late cancellation penalty"

// TransitionError carries the current and required states so callers can
// surface both.
type TransitionError struct {
	From     Status
	Required Status
	Op       string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s requires status %s, current status is %s", e.Op, e.Required, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// InsufficientPaymentError names the exact shortfall blocking checkout.
type InsufficientPaymentError struct {
	Shortfall money.Money
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment: %s outstanding", e.Shortfall)
}

func (e *InsufficientPaymentError) Is(target error) bool {
	return target == ErrInsufficientPayment
}

// RoomSpec is the slice of room state the reservation aggregate needs for its
// creation guards.
type RoomSpec struct {
	ID       uuid.UUID
	Capacity int
	BaseRate money.Money
}

type Reservation struct {
	id        uuid.UUID
	guestID   uuid.UUID
	roomID    uuid.UUID
	stay      StayRange
	occupants int
	status    Status
	payments  []Payment
	extras    []ExtraCharge
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation applies the creation guards and enters at CONFIRMED.
// Availability against other reservations is the caller's concern; it needs
// store access and a serializable section around check-then-act.
func NewReservation(room RoomSpec, guestID uuid.UUID, stay StayRange, occupants int) (*Reservation, error) {
	if occupants < 1 {
		return nil, ErrInvalidOccupants
	}
	if occupants > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	return &Reservation{
		id:        uuid.New(),
		guestID:   guestID,
		roomID:    room.ID,
		stay:      stay,
		occupants: occupants,
		status:    StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id, guestID, roomID uuid.UUID,
	stay StayRange,
	occupants int,
	status Status,
	payments []Payment,
	extras []ExtraCharge,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		guestID:   guestID,
		roomID:    roomID,
		stay:      stay,
		occupants: occupants,
		status:    status,
		payments:  payments,
		extras:    extras,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) CheckIn() error {
	if r.status != StatusConfirmed {
		return &TransitionError{From: r.status, Required: StatusConfirmed, Op: "check-in"}
	}
	r.status = StatusCheckIn
	return nil
}

// CheckOut gates completion on full payment and returns the settled
// statement. The reservation is unchanged when the guard fails.
func (r *Reservation) CheckOut(tariff Tariff, baseRate money.Money) (Statement, error) {
	if r.status != StatusCheckIn {
		return Statement{}, &TransitionError{From: r.status, Required: StatusCheckIn, Op: "check-out"}
	}

	stmt := Reconcile(r, baseRate, tariff)
	if stmt.Balance.IsNegative() {
		return Statement{}, &InsufficientPaymentError{Shortfall: stmt.Balance.Neg()}
	}

	r.status = StatusCheckOut
	return stmt, nil
}

// Cancel moves PENDING/CONFIRMED to CANCELED. On or after the check-in date
// it appends the system-generated penalty charge and reports its amount.
func (r *Reservation) Cancel(today time.Time, tariff Tariff, baseRate money.Money) (money.Money, bool, error) {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return money.Money{}, false, &TransitionError{From: r.status, Required: StatusConfirmed, Op: "cancel"}
	}

	var penalty money.Money
	applied := false
	if !truncateToDay(today).Before(r.stay.CheckIn()) {
		penalty = tariff.CancelPenalty(baseRate, r.stay)
		if penalty.IsPositive() {
			r.extras = append(r.extras, ExtraCharge{description: lateCancellationDescription, amount: penalty})
			applied = true
		}
	}

	r.status = StatusCanceled
	return penalty, applied, nil
}

// MarkNoShow transitions a CONFIRMED reservation whose check-in date has
// passed. The sweep relies on this guard for idempotence.
func (r *Reservation) MarkNoShow(today time.Time) error {
	if r.status != StatusConfirmed {
		return &TransitionError{From: r.status, Required: StatusConfirmed, Op: "no-show"}
	}
	if !r.stay.CheckIn().Before(truncateToDay(today)) {
		return ErrNotYetDue
	}
	r.status = StatusNoShow
	return nil
}

// AddExtraCharge rejects charges once the reservation is closed.
func (r *Reservation) AddExtraCharge(description string, amount money.Money) (ExtraCharge, error) {
	if r.status.IsTerminal() {
		return ExtraCharge{}, ErrReservationClosed
	}

	charge, err := NewExtraCharge(description, amount)
	if err != nil {
		return ExtraCharge{}, err
	}
	r.extras = append(r.extras, charge)
	return charge, nil
}

// RecordPayment is accepted in any state: settling an outstanding balance
// after checkout or cancellation is a legitimate front-desk flow.
func (r *Reservation) RecordPayment(method string, amount money.Money, paidAt time.Time) (Payment, error) {
	payment, err := NewPayment(method, amount, paidAt)
	if err != nil {
		return Payment{}, err
	}
	r.payments = append(r.payments, payment)
	return payment, nil
}

func (r *Reservation) TotalPaid() money.Money {
	var total money.Money
	for _, p := range r.payments {
		total = total.Add(p.Amount())
	}
	return total
}

func (r *Reservation) ExtrasTotal() money.Money {
	var total money.Money
	for _, e := range r.extras {
		total = total.Add(e.Amount())
	}
	return total
}

// SameStayIntent reports whether two reservations express the same booking
// intent: same room, identical dates. This is a duplicate-detection
// heuristic, not identity.
func SameStayIntent(a, b *Reservation) bool {
	return a.roomID == b.roomID &&
		a.stay.CheckIn().Equal(b.stay.CheckIn()) &&
		a.stay.CheckOut().Equal(b.stay.CheckOut())
}

func (r *Reservation) ID() uuid.UUID      { return r.id }
func (r *Reservation) GuestID() uuid.UUID { return r.guestID }
func (r *Reservation) RoomID() uuid.UUID  { return r.roomID }
func (r *Reservation) Stay() StayRange    { return r.stay }
func (r *Reservation) Occupants() int     { return r.occupants }
func (r *Reservation) Status() Status     { return r.status }
func (r *Reservation) Nights() int        { return r.stay.Nights() }

func (r *Reservation) Payments() []Payment {
	out := make([]Payment, len(r.payments))
	copy(out, r.payments)
	return out
}

func (r *Reservation) Extras() []ExtraCharge {
	out := make([]ExtraCharge, len(r.extras))
	copy(out, r.extras)
	return out
}

func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
