package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("guest name cannot be empty")
	ErrInvalidDocument    = errors.New("invalid document type")
	ErrEmptyDocumentValue = errors.New("document number cannot be empty")
)

type Guest struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     string
	documents []Document
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(name string, email Email, phone string) (*Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Guest{
		id:    uuid.New(),
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
	}, nil
}

func ReconstructGuest(
	id uuid.UUID,
	name string,
	email Email,
	phone string,
	documents []Document,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		documents: documents,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *Guest) AddDocument(docType DocumentType, number string) (Document, error) {
	doc, err := NewDocument(docType, number)
	if err != nil {
		return Document{}, err
	}
	g.documents = append(g.documents, doc)
	return doc, nil
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) Name() string         { return g.name }
func (g *Guest) Email() Email         { return g.email }
func (g *Guest) Phone() string        { return g.phone }
func (g *Guest) Documents() []Document {
	out := make([]Document, len(g.documents))
	copy(out, g.documents)
	return out
}
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }
