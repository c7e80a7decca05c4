package readstore

import (
	"context"

	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

// CredentialsRow is the login read model; the password hash never leaves
// the auth command.
type CredentialsRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

const findStaffByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM staff_users
WHERE email = $1
`

func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*CredentialsRow, error) {
	var row CredentialsRow
	err := r.db.QueryRow(ctx, findStaffByEmailSQL, email).Scan(
		&row.ID, &row.Email, &row.PasswordHash, &row.Role, &row.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff user by email", err)
	}
	return &row, nil
}

const findAuthorizedStaffByIDSQL = `
SELECT id, email, role, is_active
FROM staff_users
WHERE id = $1
`

func (r *StaffReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	var view queries.AuthorizedStaffView
	err := r.db.QueryRow(ctx, findAuthorizedStaffByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff user by ID", err)
	}
	return &view, nil
}
