package ports

import (
	"context"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingExpired(ctx context.Context, b *domain.Booking)
	// NotifyOrphanedPayment reports a verified payment that arrived after its
	// hold was released and needs a manual refund.
	NotifyOrphanedPayment(ctx context.Context, b *domain.Booking, paymentRef string)
}
