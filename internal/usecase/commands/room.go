package commands

import (
	"context"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/room"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrDuplicateRoomNumber = errs.New("room number already exists")
	ErrRoomValidation      = errs.New("room validation failed")
)

type RoomCommands interface {
	CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error
	UpdateRoomStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomStatusRequest) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error) {
	rm, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRoomValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Rooms().Create(ctx, tx.DB(), rm)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrDuplicateRoomNumber)
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

func (c *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return err
		}

		if req.Capacity != nil {
			if err := rm.SetCapacity(*req.Capacity); err != nil {
				return errs.Mark(err, ErrRoomValidation)
			}
		}
		if req.BaseRate != nil {
			rate, rateErr := money.NewPositiveAmount(*req.BaseRate)
			if rateErr != nil {
				return errs.Mark(rateErr, ErrRoomValidation)
			}
			if err := rm.SetBaseRate(rate); err != nil {
				return errs.Mark(err, ErrRoomValidation)
			}
		}

		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
}

func (c *roomCommandsImpl) UpdateRoomStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomStatusRequest) error {
	status, err := room.NewStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrRoomValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, findErr := tx.Rooms().FindByID(ctx, tx.DB(), id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, ErrRoomNotFound)
			}
			return findErr
		}

		if err := rm.SetStatus(status); err != nil {
			return errs.Mark(err, ErrRoomValidation)
		}
		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
}
