package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/samikhan1239/StayFinder/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReconcilerService struct {
	bookingRepo ports.BookingRepo
	gateway     ports.PaymentGateway
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewReconcilerService(
	bookingRepo ports.BookingRepo,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *ReconcilerService {
	return &ReconcilerService{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

// ConfirmPayment verifies the gateway signature for the booking's order and
// moves the booking from pending to confirmed. Only the first valid proof
// wins; later ones get domain.ErrAlreadyProcessed.
func (s *ReconcilerService) ConfirmPayment(
	ctx context.Context,
	principal *domain.Principal,
	in domain.ConfirmPaymentInput,
) (*domain.Booking, error) {
	if principal == nil || principal.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := validateConfirmation(in); err != nil {
		return nil, err
	}

	bookingID := strings.TrimSpace(in.BookingID)
	proof := strings.TrimSpace(in.PaymentProofRef)
	signature := strings.TrimSpace(in.Signature)

	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != principal.UserID {
		return nil, domain.ErrBookingNotFound
	}

	if !s.gateway.VerifySignature(booking.PaymentOrderRef, proof, signature) {
		s.logger.Warn("payment signature mismatch",
			logger.String("booking_id", booking.ID),
			logger.String("order_id", booking.PaymentOrderRef),
			logger.String("payment_id", proof),
		)
		return nil, domain.ErrInvalidSignature
	}

	if !booking.CanTransition(domain.BookingStatusConfirmed) {
		if booking.Status == domain.BookingStatusCancelled {
			s.reportOrphanedPayment(ctx, booking, proof)
		}
		return nil, domain.ErrAlreadyProcessed
	}

	confirmed, err := s.bookingRepo.Confirm(ctx, booking.ID, proof)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			s.checkLostToExpiry(ctx, booking.ID, proof)
		}
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", confirmed.ID),
		logger.String("listing_id", confirmed.ListingID),
		logger.String("user_id", confirmed.UserID),
		logger.String("payment_id", proof),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), confirmed)

	return confirmed, nil
}

// checkLostToExpiry handles a confirmation that lost its compare-and-set to
// the hold expirer between load and update.
func (s *ReconcilerService) checkLostToExpiry(ctx context.Context, bookingID, paymentRef string) {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to reload booking after lost confirmation",
			logger.String("booking_id", bookingID),
			logger.String("payment_id", paymentRef),
			logger.String("error", err.Error()),
		)
		return
	}
	if current.Status == domain.BookingStatusCancelled {
		s.reportOrphanedPayment(ctx, current, paymentRef)
	}
}

// reportOrphanedPayment flags a verified payment whose hold has already been
// released. The customer was charged and must be refunded manually.
func (s *ReconcilerService) reportOrphanedPayment(ctx context.Context, b *domain.Booking, paymentRef string) {
	s.logger.Error("payment captured for released hold, refund required",
		logger.String("booking_id", b.ID),
		logger.String("listing_id", b.ListingID),
		logger.String("user_id", b.UserID),
		logger.String("order_id", b.PaymentOrderRef),
		logger.String("payment_id", paymentRef),
		logger.Int64("amount", b.PriceTotal),
	)

	go s.notifier.NotifyOrphanedPayment(context.WithoutCancel(ctx), b, paymentRef)
}
