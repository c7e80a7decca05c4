package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, status, roomType *string) ([]*RoomView, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, status, roomType *string) ([]*RoomView, error)
}

type AvailabilityRepo interface {
	HasBlockingOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type roomQueriesImpl struct {
	rooms        RoomViewRepo
	availability AvailabilityRepo
}

func NewRoomQueries(rooms RoomViewRepo, availability AvailabilityRepo) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, availability: availability}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.rooms.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context, status, roomType *string) ([]*RoomView, error) {
	return q.rooms.List(ctx, status, roomType)
}

func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}

	overlaps, err := q.availability.HasBlockingOverlap(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		RoomID:    roomID,
		CheckIn:   checkIn.Format(time.DateOnly),
		CheckOut:  checkOut.Format(time.DateOnly),
		Available: !overlaps,
	}, nil
}
