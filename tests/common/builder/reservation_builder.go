//go:build unit || e2e

package builder

import (
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	GuestID   uuid.UUID
	RoomID    uuid.UUID
	Capacity  int
	BaseRate  float64
	CheckIn   time.Time
	CheckOut  time.Time
	Occupants int
}

func NewReservationBuilder() *ReservationBuilder {
	// Mon-Wed in an off-season month: base rate applies unmodified.
	return &ReservationBuilder{
		GuestID:   uuid.New(),
		RoomID:    uuid.New(),
		Capacity:  2,
		BaseRate:  100.00,
		CheckIn:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Occupants: 2,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithOccupants(n int) *ReservationBuilder {
	b.Occupants = n
	return b
}

func (b *ReservationBuilder) WithCapacity(n int) *ReservationBuilder {
	b.Capacity = n
	return b
}

func (b *ReservationBuilder) BaseRateMoney() money.Money {
	m, _ := money.NewPositiveAmount(b.BaseRate)
	return m
}

func (b *ReservationBuilder) BuildStay() (reservation.StayRange, error) {
	return reservation.NewStayRange(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	spec := reservation.RoomSpec{
		ID:       b.RoomID,
		Capacity: b.Capacity,
		BaseRate: b.BaseRateMoney(),
	}
	return reservation.NewReservation(spec, b.GuestID, stay, b.Occupants)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		GuestID:   b.GuestID,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn.Format(time.DateOnly),
		CheckOut:  b.CheckOut.Format(time.DateOnly),
		Occupants: b.Occupants,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:         uuid.New(),
		GuestID:    b.GuestID,
		GuestName:  "Ada Lovelace",
		RoomID:     b.RoomID,
		RoomNumber: 101,
		CheckIn:    b.CheckIn.Format(time.DateOnly),
		CheckOut:   b.CheckOut.Format(time.DateOnly),
		Occupants:  b.Occupants,
		Status:     "CONFIRMED",
		Payments:   []queries.PaymentView{},
		Extras:     []queries.ExtraChargeView{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
