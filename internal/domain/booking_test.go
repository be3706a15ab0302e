package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]time.Time
		b    [2]time.Time
		want bool
	}{
		{"partial overlap", [2]time.Time{day(1), day(5)}, [2]time.Time{day(4), day(8)}, true},
		{"back to back", [2]time.Time{day(1), day(5)}, [2]time.Time{day(5), day(8)}, false},
		{"contained", [2]time.Time{day(1), day(10)}, [2]time.Time{day(3), day(4)}, true},
		{"identical", [2]time.Time{day(1), day(5)}, [2]time.Time{day(1), day(5)}, true},
		{"disjoint before", [2]time.Time{day(6), day(8)}, [2]time.Time{day(1), day(3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]))
			assert.Equal(t, tt.want, Overlaps(tt.b[0], tt.b[1], tt.a[0], tt.a[1]))
		})
	}
}

func TestBooking_CanTransition(t *testing.T) {
	pending := &Booking{Status: BookingStatusPending}
	confirmed := &Booking{Status: BookingStatusConfirmed}
	cancelled := &Booking{Status: BookingStatusCancelled}

	assert.True(t, pending.CanTransition(BookingStatusConfirmed))
	assert.True(t, pending.CanTransition(BookingStatusCancelled))
	assert.False(t, pending.CanTransition(BookingStatusPending))
	assert.False(t, confirmed.CanTransition(BookingStatusConfirmed))
	assert.False(t, confirmed.CanTransition(BookingStatusCancelled))
	assert.False(t, cancelled.CanTransition(BookingStatusConfirmed))
}

func TestBookingStatus_Active(t *testing.T) {
	assert.True(t, BookingStatusPending.Active())
	assert.True(t, BookingStatusConfirmed.Active())
	assert.False(t, BookingStatusCancelled.Active())
}

func TestValidationError(t *testing.T) {
	var v ValidationError
	assert.NoError(t, v.Err())

	v.AddMissing("email")
	v.Add("guests", "must be at least 1")
	v.AddMissing("phone")

	err := v.Err()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, []string{"email", "phone"}, v.MissingFields())
	assert.True(t, v.Has("guests"))
	assert.Contains(t, err.Error(), "guests must be at least 1")

	var target *ValidationError
	assert.True(t, errors.As(err, &target))
	assert.Len(t, target.Fields, 3)
}

func TestListing_GuestLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxGuests, (&Listing{}).GuestLimit())
	assert.Equal(t, 4, (&Listing{MaxGuests: 4}).GuestLimit())
}
