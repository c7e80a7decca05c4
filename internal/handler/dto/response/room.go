package response

import (
	"time"

	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Type      string    `json:"type"`
	Capacity  int       `json:"capacity"`
	BaseRate  float64   `json:"baseRate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Available bool      `json:"available"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, view := range views {
		result[i] = FromRoomView(view)
	}
	return result
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
