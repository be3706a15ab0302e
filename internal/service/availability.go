package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/service/ports"
)

type AvailabilityService struct {
	bookingRepo ports.BookingRepo
	dates       *dates.Normalizer
}

func NewAvailabilityService(bookingRepo ports.BookingRepo, normalizer *dates.Normalizer) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		dates:       normalizer,
	}
}

// IsAvailable reports whether no pending or confirmed booking of the listing
// overlaps [checkIn, checkOut).
func (s *AvailabilityService) IsAvailable(ctx context.Context, listingID string, checkIn, checkOut time.Time) (bool, error) {
	in := s.dates.Day(checkIn)
	out := s.dates.Day(checkOut)

	existing, err := s.bookingRepo.ListOverlapping(ctx, listingID, in, out)
	if err != nil {
		return false, fmt.Errorf("list overlapping: %w", err)
	}

	for _, b := range existing {
		if b.Status.Active() && b.OverlapsRange(in, out) {
			return false, nil
		}
	}
	return true, nil
}
