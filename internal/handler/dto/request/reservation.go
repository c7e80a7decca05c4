package request

import (
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID   uuid.UUID `json:"guest_id" binding:"required"`
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	CheckIn   string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut  string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Occupants int       `json:"occupants" binding:"required,gte=1"`
}

// Stay parses the date strings; validity beyond the format is the domain's
// call.
func (r CreateReservationRequest) Stay() (reservation.StayRange, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return reservation.StayRange{}, reservation.ErrInvalidDateRange
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return reservation.StayRange{}, reservation.ErrInvalidDateRange
	}
	return reservation.NewStayRange(checkIn, checkOut)
}

type AddExtraChargeRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

func (r AddExtraChargeRequest) AmountMoney() (money.Money, error) {
	return money.NewPositiveAmount(r.Amount)
}

type RecordPaymentRequest struct {
	Method string  `json:"method" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (r RecordPaymentRequest) AmountMoney() (money.Money, error) {
	return money.NewPositiveAmount(r.Amount)
}
