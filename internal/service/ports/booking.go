package ports

import (
	"context"
	"time"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

type BookingRepo interface {
	// Create inserts a pending booking. It fails with domain.ErrDatesUnavailable
	// when an active booking of the same listing overlaps the range, including
	// one committed concurrently.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListOverlapping(ctx context.Context, listingID string, checkIn, checkOut time.Time) ([]*domain.Booking, error)
	// Confirm moves a pending booking to confirmed/captured. It fails with
	// domain.ErrAlreadyProcessed when the booking is no longer pending.
	Confirm(ctx context.Context, id, paymentProofRef string) (*domain.Booking, error)
	CancelExpired(ctx context.Context, createdBefore time.Time) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
