package commands

import (
	"context"
	"log/slog"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/domain/room"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrRoomUnavailable       = errs.New("room is not open for booking")
	ErrRoomConflict          = errs.New("room already booked for the requested dates")
	ErrReservationValidation = errs.New("reservation validation failed")
)

type CheckOutResult struct {
	Statement reservation.Statement
}

type CancelResult struct {
	Penalty        money.Money
	PenaltyApplied bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (uuid.UUID, error)
	CheckIn(ctx context.Context, id uuid.UUID) error
	CheckOut(ctx context.Context, id uuid.UUID) (*CheckOutResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*CancelResult, error)
	AddExtraCharge(ctx context.Context, id uuid.UUID, req reqdto.AddExtraChargeRequest) (uuid.UUID, error)
	RecordPayment(ctx context.Context, id uuid.UUID, req reqdto.RecordPaymentRequest) (uuid.UUID, error)
	RunNoShowSweep(ctx context.Context) (int, error)
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	tariff reservation.Tariff
	clock  clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, tariff reservation.Tariff, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		tariff: tariff,
		clock:  clk,
	}
}

// CreateReservation runs under serializable isolation so the availability
// check and the insert act as one atomic step. Two racing bookings for the
// same dates cannot both commit; the loser retries and then hits the
// overlap check.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (uuid.UUID, error) {
	stay, err := req.Stay()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrReservationValidation)
	}

	var id uuid.UUID
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomSnap, findErr := tx.Reads().RoomByID(ctx, req.RoomID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, ErrRoomNotFound)
			}
			return findErr
		}
		if !isBookable(roomSnap.Status) {
			return ErrRoomUnavailable
		}

		if _, findErr := tx.Reads().GuestByID(ctx, req.GuestID); findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, ErrGuestNotFound)
			}
			return findErr
		}

		overlaps, overlapErr := tx.Reads().HasBlockingOverlap(ctx, req.RoomID, stay.CheckIn(), stay.CheckOut())
		if overlapErr != nil {
			return overlapErr
		}
		if overlaps {
			return ErrRoomConflict
		}

		res, domainErr := reservation.NewReservation(reservation.RoomSpec{
			ID:       roomSnap.ID,
			Capacity: roomSnap.Capacity,
			BaseRate: roomSnap.BaseRate,
		}, req.GuestID, stay, req.Occupants)
		if domainErr != nil {
			return errs.Mark(domainErr, ErrReservationValidation)
		}

		createdID, createErr := tx.Reservations().Create(ctx, tx.DB(), res)
		if createErr != nil {
			// The exclusion constraint is the backstop when serializable
			// retries are exhausted
			if infra.IsKind(createErr, infra.KindConflict) {
				return errs.Mark(createErr, ErrRoomConflict)
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

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.CheckIn(); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, res.Status()); err != nil {
			return err
		}

		return c.moveRoom(ctx, tx, res.RoomID(), func(rm *room.Room) { rm.MarkOccupied() })
	})
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) (*CheckOutResult, error) {
	var result CheckOutResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		rm, err := tx.Rooms().FindByID(ctx, tx.DB(), res.RoomID())
		if err != nil {
			return err
		}

		stmt, err := res.CheckOut(c.tariff, rm.BaseRate())
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, res.Status()); err != nil {
			return err
		}

		rm.Release()
		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return err
		}

		result.Statement = stmt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*CancelResult, error) {
	var result CancelResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		rm, err := tx.Rooms().FindByID(ctx, tx.DB(), res.RoomID())
		if err != nil {
			return err
		}

		penalty, applied, err := res.Cancel(clock.Today(c.clock), c.tariff, rm.BaseRate())
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, res.Status()); err != nil {
			return err
		}

		if applied {
			extras := res.Extras()
			charge := extras[len(extras)-1]
			if _, err := tx.Reservations().AddExtraCharge(ctx, tx.DB(), id, charge); err != nil {
				return err
			}
		}

		result.Penalty = penalty
		result.PenaltyApplied = applied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *reservationCommandsImpl) AddExtraCharge(ctx context.Context, id uuid.UUID, req reqdto.AddExtraChargeRequest) (uuid.UUID, error) {
	amount, err := req.AmountMoney()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrReservationValidation)
	}

	var chargeID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := c.findForUpdate(ctx, tx, id)
		if findErr != nil {
			return findErr
		}

		charge, domainErr := res.AddExtraCharge(req.Description, amount)
		if domainErr != nil {
			return domainErr
		}

		createdID, addErr := tx.Reservations().AddExtraCharge(ctx, tx.DB(), id, charge)
		if addErr != nil {
			return addErr
		}
		chargeID = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return chargeID, nil
}

func (c *reservationCommandsImpl) RecordPayment(ctx context.Context, id uuid.UUID, req reqdto.RecordPaymentRequest) (uuid.UUID, error) {
	amount, err := req.AmountMoney()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrReservationValidation)
	}

	var paymentID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, findErr := c.findForUpdate(ctx, tx, id)
		if findErr != nil {
			return findErr
		}

		payment, domainErr := res.RecordPayment(req.Method, amount, c.clock.Now())
		if domainErr != nil {
			return domainErr
		}

		createdID, addErr := tx.Reservations().AddPayment(ctx, tx.DB(), id, payment)
		if addErr != nil {
			return addErr
		}
		paymentID = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return paymentID, nil
}

// RunNoShowSweep flips every CONFIRMED reservation whose check-in date has
// passed to NO_SHOW. The sweep is idempotent: a second run finds nothing.
func (c *reservationCommandsImpl) RunNoShowSweep(ctx context.Context) (int, error) {
	today := clock.Today(c.clock)
	swept := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Reservations().FindDueNoShowIDs(ctx, tx.DB(), today)
		if err != nil {
			return err
		}

		for _, id := range ids {
			res, findErr := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
			if findErr != nil {
				return findErr
			}
			if markErr := res.MarkNoShow(today); markErr != nil {
				slog.Warn("skipping reservation in no-show sweep",
					"reservation_id", id, "error", markErr.Error())
				continue
			}
			if updateErr := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, res.Status()); updateErr != nil {
				return updateErr
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}

func (c *reservationCommandsImpl) findForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return res, nil
}

func (c *reservationCommandsImpl) moveRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID, move func(*room.Room)) error {
	rm, err := tx.Rooms().FindByID(ctx, tx.DB(), roomID)
	if err != nil {
		return err
	}
	move(rm)
	return tx.Rooms().Update(ctx, tx.DB(), rm)
}

func isBookable(status string) bool {
	switch room.Status(status) {
	case room.StatusMaintenance, room.StatusBlocked:
		return false
	default:
		return true
	}
}
