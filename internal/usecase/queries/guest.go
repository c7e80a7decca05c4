package queries

import (
	"context"

	"github.com/google/uuid"
)

type GuestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context) ([]*GuestView, error)
}

type GuestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	List(ctx context.Context) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	repo GuestViewRepo
}

func NewGuestQueries(repo GuestViewRepo) GuestQueries {
	return &guestQueriesImpl{repo: repo}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *guestQueriesImpl) List(ctx context.Context) ([]*GuestView, error) {
	return q.repo.List(ctx)
}
