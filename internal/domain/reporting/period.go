package reporting

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("period start must be before period end")

// Period is a half-open date interval [start, end) over whole days, the same
// convention stays use.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if !start.Before(end) {
		return Period{}, ErrInvalidRange
	}
	return Period{start: start, end: end}, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Days() int {
	return int(p.end.Sub(p.start).Hours() / 24)
}
