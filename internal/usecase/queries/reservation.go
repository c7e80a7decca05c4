package queries

import (
	"context"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"

	"github.com/google/uuid"
)

// BillingSource carries everything the statement math needs in one row,
// so the query side never rebuilds the aggregate.
type BillingSource struct {
	ReservationID uuid.UUID
	Status        reservation.Status
	Stay          reservation.StayRange
	BaseRate      money.Money
	ExtrasTotal   money.Money
	TotalPaid     money.Money
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, guestID, roomID *uuid.UUID, status *string) ([]*ReservationListItem, error)
	GetStatement(ctx context.Context, id uuid.UUID) (*StatementView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, guestID, roomID *uuid.UUID, status *string) ([]*ReservationListItem, error)
	FindBillingSource(ctx context.Context, id uuid.UUID) (*BillingSource, error)
}

type reservationQueriesImpl struct {
	repo   ReservationViewRepo
	tariff reservation.Tariff
}

func NewReservationQueries(repo ReservationViewRepo, tariff reservation.Tariff) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, tariff: tariff}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) List(ctx context.Context, guestID, roomID *uuid.UUID, status *string) ([]*ReservationListItem, error) {
	return q.repo.List(ctx, guestID, roomID, status)
}

func (q *reservationQueriesImpl) GetStatement(ctx context.Context, id uuid.UUID) (*StatementView, error) {
	src, err := q.repo.FindBillingSource(ctx, id)
	if err != nil {
		return nil, err
	}

	stmt := reservation.ReconcileParts(src.Status, src.Stay, src.BaseRate, src.ExtrasTotal, src.TotalPaid, q.tariff)

	return &StatementView{
		ReservationID: src.ReservationID,
		Status:        src.Status.String(),
		RoomCharge:    stmt.RoomCharge.Float64(),
		ExtrasTotal:   stmt.ExtrasTotal.Float64(),
		TotalDue:      stmt.TotalDue.Float64(),
		TotalPaid:     stmt.TotalPaid.Float64(),
		Balance:       stmt.Balance.Float64(),
	}, nil
}
