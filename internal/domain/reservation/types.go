package reservation

// Status is the reservation lifecycle state. PENDING is a representable
// default but no API path creates it; bookings enter at CONFIRMED.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCheckIn   Status = "CHECKIN"
	StatusCheckOut  Status = "CHECKOUT"
	StatusCanceled  Status = "CANCELED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckIn, StatusCheckOut, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckOut, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this status occupies its room's
// calendar for availability purposes.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusCheckIn
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
