package shared

import (
	"context"
	"time"

	"innkeeper/internal/domain/guest"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/domain/staff"
	"innkeeper/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Read-committed transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for check-then-act sections;
	// serialization failures are absorbed by the retry loop
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Reservations() ReservationRepository
	Staff() StaffRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	GuestByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	// HasBlockingOverlap reports whether any CONFIRMED or CHECKIN reservation
	// on the room overlaps [checkIn, checkOut)
	HasBlockingOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, tx db.DBTX, rm *room.Room) error
}

type GuestRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error)
	AddDocument(ctx context.Context, tx db.DBTX, guestID uuid.UUID, doc guest.Document) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// FindForUpdate loads the full aggregate under a row lock so lifecycle
	// transitions serialize per reservation
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
	AddPayment(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, p reservation.Payment) (uuid.UUID, error)
	AddExtraCharge(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, c reservation.ExtraCharge) (uuid.UUID, error)
	// FindDueNoShowIDs lists CONFIRMED reservations whose check-in date is
	// strictly before the given day, locked for the sweep
	FindDueNoShowIDs(ctx context.Context, tx db.DBTX, before time.Time) ([]uuid.UUID, error)
}

type StaffRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *staff.Staff) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error
}
