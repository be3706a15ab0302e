package scheduler

import (
	"context"
	"time"

	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdExpirer interface {
	ExpireStaleHolds(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically releases pending holds whose payment never arrived.
type Scheduler struct {
	expirer  holdExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	expirer holdExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		expirer:  expirer,
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps once immediately, to release holds that went stale while the
// service was down, and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	expired, err := s.expirer.ExpireStaleHolds(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("hold expired",
			logger.String("booking_id", b.ID),
			logger.String("listing_id", b.ListingID),
			logger.String("user_id", b.UserID),
			logger.String("order_id", b.PaymentOrderRef),
		)
	}
}
