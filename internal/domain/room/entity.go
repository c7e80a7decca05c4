package room

import (
	"errors"
	"time"

	"innkeeper/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidType     = errors.New("invalid room type")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrInvalidNumber   = errors.New("room number must be positive")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrInvalidBaseRate = errors.New("base rate must be positive")
)

type Room struct {
	id        uuid.UUID
	number    int
	roomType  Type
	capacity  int
	baseRate  money.Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(number int, roomType Type, capacity int, baseRate money.Money) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if err := validateBaseRate(baseRate); err != nil {
		return nil, err
	}

	return &Room{
		id:       uuid.New(),
		number:   number,
		roomType: roomType,
		capacity: capacity,
		baseRate: baseRate,
		status:   StatusAvailable,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number int,
	roomType Type,
	capacity int,
	baseRate money.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:        id,
		number:    number,
		roomType:  roomType,
		capacity:  capacity,
		baseRate:  baseRate,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetCapacity rejects invalid values and leaves the room unchanged on failure.
func (r *Room) SetCapacity(capacity int) error {
	if err := validateCapacity(capacity); err != nil {
		return err
	}
	r.capacity = capacity
	return nil
}

func (r *Room) SetBaseRate(rate money.Money) error {
	if err := validateBaseRate(rate); err != nil {
		return err
	}
	r.baseRate = rate
	return nil
}

// SetStatus is the administrative move (maintenance, blocked). Lifecycle
// transitions use MarkOccupied/Release instead.
func (r *Room) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}

func (r *Room) MarkOccupied() {
	r.status = StatusOccupied
}

func (r *Room) Release() {
	r.status = StatusAvailable
}

func validateCapacity(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

func validateBaseRate(rate money.Money) error {
	if !rate.IsPositive() {
		return ErrInvalidBaseRate
	}
	return nil
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Number() int           { return r.number }
func (r *Room) RoomType() Type        { return r.roomType }
func (r *Room) Capacity() int         { return r.capacity }
func (r *Room) BaseRate() money.Money { return r.baseRate }
func (r *Room) Status() Status        { return r.status }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
