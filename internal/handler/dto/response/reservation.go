package response

import (
	"time"

	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         uuid.UUID             `json:"id"`
	GuestID    uuid.UUID             `json:"guestId"`
	GuestName  string                `json:"guestName"`
	RoomID     uuid.UUID             `json:"roomId"`
	RoomNumber int                   `json:"roomNumber"`
	CheckIn    string                `json:"checkIn"`
	CheckOut   string                `json:"checkOut"`
	Occupants  int                   `json:"occupants"`
	Status     string                `json:"status"`
	Payments   []PaymentResponse     `json:"payments"`
	Extras     []ExtraChargeResponse `json:"extraCharges"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	GuestID    uuid.UUID `json:"guestId"`
	GuestName  string    `json:"guestName"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomNumber int       `json:"roomNumber"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PaymentResponse struct {
	ID     uuid.UUID `json:"id"`
	Method string    `json:"method"`
	Amount float64   `json:"amount"`
	PaidAt string    `json:"paidAt"`
}

type ExtraChargeResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

type StatementResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
	RoomCharge    float64   `json:"roomCharge"`
	ExtrasTotal   float64   `json:"extrasTotal"`
	TotalDue      float64   `json:"totalDue"`
	TotalPaid     float64   `json:"totalPaid"`
	Balance       float64   `json:"balance"`
}

type CancelResponse struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	Penalty        float64   `json:"penalty"`
	PenaltyApplied bool      `json:"penaltyApplied"`
}

type SweepResponse struct {
	MarkedNoShow int `json:"markedNoShow"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	if resp.Payments == nil {
		resp.Payments = []PaymentResponse{}
	}
	if resp.Extras == nil {
		resp.Extras = []ExtraChargeResponse{}
	}
	return &resp
}

func FromReservationListItems(items []*queries.ReservationListItem) []*ReservationListResponse {
	result := make([]*ReservationListResponse, len(items))
	for i, item := range items {
		var resp ReservationListResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}

func FromStatementView(view *queries.StatementView) *StatementResponse {
	var resp StatementResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCheckOutResult(id uuid.UUID, stmt reservation.Statement) *StatementResponse {
	return &StatementResponse{
		ReservationID: id,
		Status:        reservation.StatusCheckOut.String(),
		RoomCharge:    stmt.RoomCharge.Float64(),
		ExtrasTotal:   stmt.ExtrasTotal.Float64(),
		TotalDue:      stmt.TotalDue.Float64(),
		TotalPaid:     stmt.TotalPaid.Float64(),
		Balance:       stmt.Balance.Float64(),
	}
}

func FromCancelResult(id uuid.UUID, result *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		ID:             id,
		Status:         reservation.StatusCanceled.String(),
		Penalty:        result.Penalty.Float64(),
		PenaltyApplied: result.PenaltyApplied,
	}
}
