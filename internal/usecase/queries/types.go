package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Monetary amounts are decimal values,
// dates are YYYY-MM-DD strings, matching the wire format.

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Type      string    `json:"type"`
	Capacity  int       `json:"capacity"`
	BaseRate  float64   `json:"base_rate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GuestView struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     *string        `json:"phone,omitempty"`
	Documents []DocumentView `json:"documents"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type DocumentView struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type ReservationView struct {
	ID         uuid.UUID         `json:"id"`
	GuestID    uuid.UUID         `json:"guest_id"`
	GuestName  string            `json:"guest_name"`
	RoomID     uuid.UUID         `json:"room_id"`
	RoomNumber int               `json:"room_number"`
	CheckIn    string            `json:"check_in"`
	CheckOut   string            `json:"check_out"`
	Occupants  int               `json:"occupants"`
	Status     string            `json:"status"`
	Payments   []PaymentView     `json:"payments"`
	Extras     []ExtraChargeView `json:"extra_charges"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	GuestID    uuid.UUID `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber int       `json:"room_number"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentView struct {
	ID     uuid.UUID `json:"id"`
	Method string    `json:"method"`
	Amount float64   `json:"amount"`
	PaidAt string    `json:"paid_at"`
}

type ExtraChargeView struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

type StatementView struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Status        string    `json:"status"`
	RoomCharge    float64   `json:"room_charge"`
	ExtrasTotal   float64   `json:"extras_total"`
	TotalDue      float64   `json:"total_due"`
	TotalPaid     float64   `json:"total_paid"`
	Balance       float64   `json:"balance"`
}

type AvailabilityView struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Available bool      `json:"available"`
}

type OccupancyReportView struct {
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	TotalRooms    int     `json:"total_rooms"`
	Days          int     `json:"days"`
	NightsSold    int     `json:"nights_sold"`
	Revenue       float64 `json:"revenue"`
	OccupancyRate float64 `json:"occupancy_rate"`
	ADR           float64 `json:"adr"`
	RevPAR        float64 `json:"revpar"`
	Cancellations int     `json:"cancellations"`
	NoShows       int     `json:"no_shows"`
}

type AuthorizedStaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
