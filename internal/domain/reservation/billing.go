package reservation

import (
	"innkeeper/internal/domain/money"
)

// Statement is the reconciled bill for a reservation at a point in time.
// Balance is TotalPaid minus TotalDue; negative means the guest still owes.
type Statement struct {
	RoomCharge  money.Money
	ExtrasTotal money.Money
	TotalDue    money.Money
	TotalPaid   money.Money
	Balance     money.Money
}

// Settled reports whether payments cover the amount due.
func (s Statement) Settled() bool {
	return !s.Balance.IsNegative()
}

// Reconcile derives the current statement from the reservation's stay,
// recorded extras and payments. It never mutates the reservation, so it is
// safe to call in any state.
func Reconcile(r *Reservation, baseRate money.Money, tariff Tariff) Statement {
	return ReconcileParts(r.Status(), r.Stay(), baseRate, r.ExtrasTotal(), r.TotalPaid(), tariff)
}

// ReconcileParts is the statement math over pre-summed totals, shared by the
// write side and the billing query. Canceled and no-show stays owe no room
// charge; the late-cancellation penalty is an extra charge and lands in
// ExtrasTotal.
func ReconcileParts(status Status, stay StayRange, baseRate, extrasTotal, totalPaid money.Money, tariff Tariff) Statement {
	var roomCharge money.Money
	if status != StatusCanceled && status != StatusNoShow {
		roomCharge = tariff.StayPrice(baseRate, stay)
	}
	due := roomCharge.Add(extrasTotal)

	return Statement{
		RoomCharge:  roomCharge,
		ExtrasTotal: extrasTotal,
		TotalDue:    due,
		TotalPaid:   totalPaid,
		Balance:     totalPaid.Sub(due),
	}
}
