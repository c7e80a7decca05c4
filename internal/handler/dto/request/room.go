package request

import (
	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/room"
)

type CreateRoomRequest struct {
	Number   int     `json:"number" binding:"required,gt=0"`
	Type     string  `json:"type" binding:"required,oneof=STANDARD DOUBLE LUXURY"`
	Capacity int     `json:"capacity" binding:"required,gte=1"`
	BaseRate float64 `json:"base_rate" binding:"required,gt=0"`
}

func (r CreateRoomRequest) ToDomain() (*room.Room, error) {
	roomType, err := room.NewType(r.Type)
	if err != nil {
		return nil, err
	}
	rate, err := money.NewPositiveAmount(r.BaseRate)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(r.Number, roomType, r.Capacity, rate)
}

type UpdateRoomRequest struct {
	Capacity *int     `json:"capacity,omitempty" binding:"omitempty,gte=1"`
	BaseRate *float64 `json:"base_rate,omitempty" binding:"omitempty,gt=0"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE BLOCKED"`
}
