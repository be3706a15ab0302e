// Package dates normalizes stay dates to calendar days in a single
// reference timezone so that overlap checks never see phantom gaps caused by
// mixed offsets.
package dates

import (
	"errors"
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location, now func() time.Time) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Normalizer{loc: loc, now: now}
}

func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

// Location is the canonical timezone every booking day is expressed in.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Day returns midnight of t's calendar day in the reference timezone.
func (n *Normalizer) Day(t time.Time) time.Time {
	t = t.In(n.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, n.loc)
}

func (n *Normalizer) Today() time.Time {
	return n.Day(n.now())
}

func (n *Normalizer) Now() time.Time {
	return n.now()
}

// Parse accepts either a bare date, read in the reference timezone, or an
// RFC3339 instant, which is first converted to the reference timezone.
func (n *Normalizer) Parse(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DayLayout, s, n.loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return n.Day(t), nil
}

// Nights counts calendar nights between two normalized days.
func (n *Normalizer) Nights(checkIn, checkOut time.Time) int {
	in := n.Day(checkIn)
	out := n.Day(checkOut)
	nights := 0
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		nights++
	}
	return nights
}

// FromStorage maps a DATE column value, which drivers return as UTC
// midnight, onto the same calendar day in the reference timezone.
func (n *Normalizer) FromStorage(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, n.loc)
}
