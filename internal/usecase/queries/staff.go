package queries

import (
	"context"

	"github.com/google/uuid"
)

type StaffQueries interface {
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffViewRepo interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
}

type staffQueriesImpl struct {
	repo StaffViewRepo
}

func NewStaffQueries(repo StaffViewRepo) StaffQueries {
	return &staffQueriesImpl{repo: repo}
}

func (q *staffQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error) {
	return q.repo.FindAuthorizedByID(ctx, id)
}
