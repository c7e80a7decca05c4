//go:build unit || e2e

package builder

import (
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/room"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Number   int
	Type     string
	Capacity int
	BaseRate float64
	Status   string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:   101,
		Type:     "STANDARD",
		Capacity: 2,
		BaseRate: 100.00,
		Status:   "AVAILABLE",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithNumber(n int) *RoomBuilder {
	b.Number = n
	return b
}

func (b *RoomBuilder) WithType(t string) *RoomBuilder {
	b.Type = t
	return b
}

func (b *RoomBuilder) WithCapacity(c int) *RoomBuilder {
	b.Capacity = c
	return b
}

func (b *RoomBuilder) WithBaseRate(r float64) *RoomBuilder {
	b.BaseRate = r
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	roomType, err := room.NewType(b.Type)
	if err != nil {
		return nil, err
	}
	rate, err := money.NewPositiveAmount(b.BaseRate)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(b.Number, roomType, b.Capacity, rate)
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Number:   b.Number,
		Type:     b.Type,
		Capacity: b.Capacity,
		BaseRate: b.BaseRate,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:        uuid.New(),
		Number:    b.Number,
		Type:      b.Type,
		Capacity:  b.Capacity,
		BaseRate:  b.BaseRate,
		Status:    b.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
