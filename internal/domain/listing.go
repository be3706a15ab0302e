package domain

import "time"

// DefaultMaxGuests applies to listings that never declared a guest limit.
const DefaultMaxGuests = 6

type Listing struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MaxGuests    int       `json:"max_guests"`
	NightlyPrice int64     `json:"nightly_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func (l *Listing) GuestLimit() int {
	if l.MaxGuests <= 0 {
		return DefaultMaxGuests
	}
	return l.MaxGuests
}
