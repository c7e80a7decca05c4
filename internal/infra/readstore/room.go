package readstore

import (
	"context"
	"time"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const findRoomByIDSQL = `
SELECT id, number, room_type, capacity, base_rate_cents, status, created_at, updated_at
FROM rooms
WHERE id = $1
`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := scanRoomRow(r.db.QueryRow(ctx, findRoomByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return row, nil
}

// Rooms list in inventory order: by type rank, then by room number. The
// ordering mirrors the in-memory comparator used by the domain.
const listRoomsSQL = `
SELECT id, number, room_type, capacity, base_rate_cents, status, created_at, updated_at
FROM rooms
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR room_type = $2)
ORDER BY
  CASE room_type WHEN 'STANDARD' THEN 1 WHEN 'DOUBLE' THEN 2 WHEN 'LUXURY' THEN 3 ELSE 4 END,
  number
`

func (r *RoomReadStore) List(ctx context.Context, status, roomType *string) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, listRoomsSQL, status, roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return result, nil
}

const countRoomsSQL = `SELECT count(*) FROM rooms`

func (r *RoomReadStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countRoomsSQL).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomRow(row rowScanner) (*queries.RoomView, error) {
	var (
		view          queries.RoomView
		baseRateCents int64
		createdAt     time.Time
		updatedAt     time.Time
	)
	err := row.Scan(
		&view.ID, &view.Number, &view.Type, &view.Capacity,
		&baseRateCents, &view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.BaseRate = money.NewMoney(baseRateCents).Float64()
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt
	return &view, nil
}
