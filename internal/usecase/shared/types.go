package shared

import (
	"innkeeper/internal/domain/money"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads

type RoomSnapshot struct {
	ID       uuid.UUID
	Number   int
	Type     string
	Capacity int
	BaseRate money.Money
	Status   string
}

type GuestSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}
