package notification

import (
	"context"

	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/samikhan1239/StayFinder/internal/service/ports"
)

// Fanout delivers every notification to each notifier in order.
type Fanout []ports.BookingNotifier

func (f Fanout) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingCreated(ctx, b)
	}
}

func (f Fanout) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingConfirmed(ctx, b)
	}
}

func (f Fanout) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	for _, n := range f {
		n.NotifyBookingExpired(ctx, b)
	}
}

func (f Fanout) NotifyOrphanedPayment(ctx context.Context, b *domain.Booking, paymentRef string) {
	for _, n := range f {
		n.NotifyOrphanedPayment(ctx, b, paymentRef)
	}
}
