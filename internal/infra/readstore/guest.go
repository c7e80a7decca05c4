package readstore

import (
	"context"

	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

const findGuestByIDSQL = `
SELECT id, name, email, phone, created_at, updated_at
FROM guests
WHERE id = $1
`

const listGuestDocumentsSQL = `
SELECT doc_type, doc_number
FROM guest_documents
WHERE guest_id = $1
ORDER BY created_at
`

func (r *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	var (
		view      queries.GuestView
		phone     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findGuestByIDSQL, id).Scan(
		&view.ID, &view.Name, &view.Email, &phone, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	docs, err := r.loadDocuments(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Documents = docs

	return &view, nil
}

const listGuestsSQL = `
SELECT id, name, email, phone, created_at, updated_at
FROM guests
ORDER BY name, id
`

func (r *GuestReadStore) List(ctx context.Context) ([]*queries.GuestView, error) {
	rows, err := r.db.Query(ctx, listGuestsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var result []*queries.GuestView
	for rows.Next() {
		var (
			view      queries.GuestView
			phone     pgtype.Text
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Email, &phone, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		view.Phone = pgconv.StringPtrFromPgtype(phone)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		view.Documents = []queries.DocumentView{}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return result, nil
}

func (r *GuestReadStore) loadDocuments(ctx context.Context, guestID uuid.UUID) ([]queries.DocumentView, error) {
	rows, err := r.db.Query(ctx, listGuestDocumentsSQL, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load guest documents", err)
	}
	defer rows.Close()

	docs := []queries.DocumentView{}
	for rows.Next() {
		var doc queries.DocumentView
		if err := rows.Scan(&doc.Type, &doc.Number); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest document", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guest documents", err)
	}
	return docs, nil
}
