package commands

import (
	"context"

	"innkeeper/internal/domain/guest"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGuestNotFound     = errs.New("guest not found")
	ErrDuplicateEmail    = errs.New("guest email already exists")
	ErrDuplicateDocument = errs.New("guest document already exists")
	ErrGuestValidation   = errs.New("guest validation failed")
)

type GuestCommands interface {
	CreateGuest(ctx context.Context, req reqdto.CreateGuestRequest) (uuid.UUID, error)
	AddDocument(ctx context.Context, guestID uuid.UUID, req reqdto.AddDocumentRequest) error
}

type guestCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewGuestCommands(uow shared.UnitOfWork) GuestCommands {
	return &guestCommandsImpl{uow: uow}
}

func (c *guestCommandsImpl) CreateGuest(ctx context.Context, req reqdto.CreateGuestRequest) (uuid.UUID, error) {
	g, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrGuestValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Guests().Create(ctx, tx.DB(), g)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrDuplicateEmail)
			}
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *guestCommandsImpl) AddDocument(ctx context.Context, guestID uuid.UUID, req reqdto.AddDocumentRequest) error {
	docType, err := guest.NewDocumentType(req.Type)
	if err != nil {
		return errs.Mark(err, ErrGuestValidation)
	}
	doc, err := guest.NewDocument(docType, req.Number)
	if err != nil {
		return errs.Mark(err, ErrGuestValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, findErr := tx.Reads().GuestByID(ctx, guestID); findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, ErrGuestNotFound)
			}
			return findErr
		}

		if addErr := tx.Guests().AddDocument(ctx, tx.DB(), guestID, doc); addErr != nil {
			if infra.IsKind(addErr, infra.KindDuplicateKey) {
				return errs.Mark(addErr, ErrDuplicateDocument)
			}
			return addErr
		}
		return nil
	})
}
