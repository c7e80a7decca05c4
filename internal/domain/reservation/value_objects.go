package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"innkeeper/internal/domain/money"
)

var (
	ErrInvalidDateRange = errors.New("check-in must be before check-out")
	ErrEmptyDescription = errors.New("charge description cannot be empty")
	ErrEmptyMethod      = errors.New("payment method cannot be empty")
)

// StayRange is a half-open date interval [checkIn, checkOut). The check-out
// day is not billed, which is what allows back-to-back bookings.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkIn.Before(checkOut) {
		return StayRange{}, ErrInvalidDateRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayRange hydrates a range from the store without re-validation.
func ReconstructStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{checkIn: truncateToDay(checkIn), checkOut: truncateToDay(checkOut)}
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

func (s StayRange) Nights() int {
	n := int(s.checkOut.Sub(s.checkIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Overlaps uses half-open semantics: touching endpoints do not conflict.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func (s StayRange) ContainsDay(day time.Time) bool {
	day = truncateToDay(day)
	return !day.Before(s.checkIn) && day.Before(s.checkOut)
}

func (s StayRange) StartsWithin(start, end time.Time) bool {
	return !s.checkIn.Before(truncateToDay(start)) && s.checkIn.Before(truncateToDay(end))
}

// ToDaterange renders the range for a postgres daterange column.
func (s StayRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

// Payment is immutable once recorded; reservations hold them append-only.
type Payment struct {
	method string
	amount money.Money
	paidAt time.Time
}

func NewPayment(method string, amount money.Money, paidAt time.Time) (Payment, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return Payment{}, ErrEmptyMethod
	}
	if !amount.IsPositive() {
		return Payment{}, money.ErrNonPositiveAmount
	}
	return Payment{method: method, amount: amount, paidAt: truncateToDay(paidAt)}, nil
}

func ReconstructPayment(method string, amount money.Money, paidAt time.Time) Payment {
	return Payment{method: method, amount: amount, paidAt: paidAt}
}

func (p Payment) Method() string      { return p.method }
func (p Payment) Amount() money.Money { return p.amount }
func (p Payment) PaidAt() time.Time   { return p.paidAt }

// ExtraCharge is immutable once recorded. System-generated charges (late
// cancellation penalties) use the same shape.
type ExtraCharge struct {
	description string
	amount      money.Money
}

func NewExtraCharge(description string, amount money.Money) (ExtraCharge, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return ExtraCharge{}, ErrEmptyDescription
	}
	if !amount.IsPositive() {
		return ExtraCharge{}, money.ErrNonPositiveAmount
	}
	return ExtraCharge{description: description, amount: amount}, nil
}

func ReconstructExtraCharge(description string, amount money.Money) ExtraCharge {
	return ExtraCharge{description: description, amount: amount}
}

func (e ExtraCharge) Description() string { return e.description }
func (e ExtraCharge) Amount() money.Money { return e.amount }
