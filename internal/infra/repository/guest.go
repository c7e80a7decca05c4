package repository

import (
	"context"

	"innkeeper/internal/domain/guest"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"

	"github.com/google/uuid"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(dbtx db.DBTX) *GuestRepository {
	return &GuestRepository{db: dbtx}
}

const createGuestSQL = `
INSERT INTO guests (id, name, email, phone)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (r *GuestRepository) Create(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createGuestSQL,
		g.ID(), g.Name(), g.Email().Value(), g.Phone(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}

	for _, doc := range g.Documents() {
		if err := r.AddDocument(ctx, tx, id, doc); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

const addGuestDocumentSQL = `
INSERT INTO guest_documents (id, guest_id, doc_type, doc_number)
VALUES ($1, $2, $3, $4)
`

func (r *GuestRepository) AddDocument(ctx context.Context, tx db.DBTX, guestID uuid.UUID, doc guest.Document) error {
	_, err := tx.Exec(ctx, addGuestDocumentSQL,
		uuid.New(), guestID, doc.Type().String(), doc.Number(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add guest document", err)
	}
	return nil
}
