package repository

import (
	"context"

	"innkeeper/internal/domain/staff"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

const createStaffSQL = `
INSERT INTO staff_users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *StaffRepository) Create(ctx context.Context, tx db.DBTX, s *staff.Staff) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createStaffSQL,
		s.ID(), s.Email().Value(), s.PasswordHash(), s.Role().String(), s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create staff user", err)
	}
	return id, nil
}

const updateStaffLastLoginSQL = `
UPDATE staff_users
SET last_login = now(), updated_at = now()
WHERE id = $1
`

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateStaffLastLoginSQL, staffID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
