package repository

import (
	"context"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const createRoomSQL = `
INSERT INTO rooms (id, number, room_type, capacity, base_rate_cents, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createRoomSQL,
		rm.ID(), rm.Number(), rm.RoomType().String(), rm.Capacity(), rm.BaseRate().Cents(), rm.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

const findRoomForUpdateSQL = `
SELECT id, number, room_type, capacity, base_rate_cents, status, created_at, updated_at
FROM rooms
WHERE id = $1
FOR UPDATE
`

func (r *RoomRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error) {
	var (
		number        int
		roomType      string
		capacity      int
		baseRateCents int64
		status        string
		createdAt     time.Time
		updatedAt     time.Time
	)
	err := tx.QueryRow(ctx, findRoomForUpdateSQL, id).Scan(
		&id, &number, &roomType, &capacity, &baseRateCents, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	return room.ReconstructRoom(
		id, number, room.Type(roomType), capacity,
		money.NewMoney(baseRateCents), room.Status(status),
		createdAt, updatedAt,
	), nil
}

const updateRoomSQL = `
UPDATE rooms
SET capacity = $2, base_rate_cents = $3, status = $4, updated_at = now()
WHERE id = $1
`

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	tag, err := tx.Exec(ctx, updateRoomSQL,
		rm.ID(), rm.Capacity(), rm.BaseRate().Cents(), rm.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
