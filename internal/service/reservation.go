package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/samikhan1239/StayFinder/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultMinPrice       int64 = 100
	DefaultCurrency             = "INR"
	DefaultGatewayTimeout       = 10 * time.Second

	// minorUnits converts the major-unit request price into paise.
	minorUnits = 100
)

type ReservationConfig struct {
	MinPrice       int64
	PhonePattern   *regexp.Regexp
	Currency       string
	HoldTTL        time.Duration
	GatewayTimeout time.Duration
}

func (c ReservationConfig) withDefaults() ReservationConfig {
	if c.MinPrice <= 0 {
		c.MinPrice = DefaultMinPrice
	}
	if c.PhonePattern == nil {
		c.PhonePattern = regexp.MustCompile(DefaultPhonePattern)
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = DefaultGatewayTimeout
	}
	return c
}

type ReservationService struct {
	listingRepo  ports.ListingRepo
	bookingRepo  ports.BookingRepo
	gateway      ports.PaymentGateway
	notifier     ports.BookingNotifier
	availability *AvailabilityService
	dates        *dates.Normalizer
	cfg          ReservationConfig
	logger       logger.Logger
}

func NewReservationService(
	listingRepo ports.ListingRepo,
	bookingRepo ports.BookingRepo,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	normalizer *dates.Normalizer,
	cfg ReservationConfig,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		listingRepo:  listingRepo,
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		notifier:     notifier,
		availability: NewAvailabilityService(bookingRepo, normalizer),
		dates:        normalizer,
		cfg:          cfg.withDefaults(),
		logger:       logger,
	}
}

// CreateReservation validates the request, checks availability, opens a
// payment order and stores a pending hold. Nothing is written unless every
// step succeeds.
func (s *ReservationService) CreateReservation(
	ctx context.Context,
	principal *domain.Principal,
	in domain.CreateReservationInput,
) (*domain.Reservation, error) {
	if principal == nil || principal.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	req, err := validateReservation(in, s.cfg, s.dates)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, req.listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	if limit := listing.GuestLimit(); req.guests > limit {
		verr := &domain.ValidationError{}
		verr.Add("guests", fmt.Sprintf("exceeds the maximum of %d for this listing", limit))
		return nil, verr
	}

	available, err := s.availability.IsAvailable(ctx, listing.ID, req.checkIn, req.checkOut)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return nil, domain.ErrDatesUnavailable
	}

	now := s.dates.Now().UTC()
	amount := req.price * minorUnits

	order, err := s.createOrder(ctx, domain.OrderRequest{
		Amount:   amount,
		Currency: s.cfg.Currency,
		Receipt:  receipt(listing.ID, now),
		Notes: map[string]string{
			"listingId": listing.ID,
			"userId":    principal.UserID,
		},
	})
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ListingID:       listing.ID,
		UserID:          principal.UserID,
		CheckIn:         req.checkIn,
		CheckOut:        req.checkOut,
		Guests:          req.guests,
		PriceTotal:      amount,
		Currency:        s.cfg.Currency,
		FirstName:       req.firstName,
		LastName:        req.lastName,
		Email:           req.email,
		Phone:           req.phone,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusCreated,
		PaymentOrderRef: order.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		s.logger.Warn("payment order left without booking",
			logger.String("order_id", order.ID),
			logger.String("listing_id", listing.ID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking reserved",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", booking.ListingID),
		logger.String("user_id", booking.UserID),
		logger.String("order_id", order.ID),
		logger.Int("nights", s.dates.Nights(booking.CheckIn, booking.CheckOut)),
		logger.Int64("amount", amount),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return &domain.Reservation{Booking: booking, Order: order}, nil
}

func (s *ReservationService) createOrder(ctx context.Context, req domain.OrderRequest) (*domain.PaymentOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("failed to create payment order",
			logger.String("receipt", req.Receipt),
			logger.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrPaymentGateway) {
			return nil, fmt.Errorf("create order: %w", err)
		}
		return nil, fmt.Errorf("%w: create order: %w", domain.ErrPaymentGateway, err)
	}
	return order, nil
}

// receipt builds a gateway receipt of at most 40 characters that is unique
// per listing and instant.
func receipt(listingID string, at time.Time) string {
	id := strings.ReplaceAll(listingID, "-", "")
	if len(id) > 12 {
		id = id[len(id)-12:]
	}
	return "bk_" + id + "_" + strconv.FormatInt(at.UnixNano(), 36)
}

// ExpireStaleHolds cancels pending bookings older than the hold TTL and
// releases their dates.
func (s *ReservationService) ExpireStaleHolds(ctx context.Context) ([]*domain.Booking, error) {
	if s.cfg.HoldTTL <= 0 {
		return nil, nil
	}

	cutoff := s.dates.Now().Add(-s.cfg.HoldTTL)
	expired, err := s.bookingRepo.CancelExpired(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("holds expired",
			logger.Int("count", len(expired)),
			logger.Duration("hold_ttl", s.cfg.HoldTTL),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *ReservationService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifier.NotifyBookingExpired(ctx, b)
	}
}

// GetBooking returns the booking only to its owner.
func (s *ReservationService) GetBooking(ctx context.Context, principal *domain.Principal, id string) (*domain.Booking, error) {
	if principal == nil || principal.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != principal.UserID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *ReservationService) ListMyBookings(ctx context.Context, principal *domain.Principal) ([]*domain.Booking, error) {
	if principal == nil || principal.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
