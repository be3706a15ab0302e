// Package memory holds in-process implementations of the service ports. They
// honour the same conflict and compare-and-set contracts as the Postgres
// repositories and back the concurrency tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	orders   map[string]string
	now      func() time.Time
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]*domain.Booking),
		orders:   make(map[string]string),
		now:      time.Now,
	}
}

func (s *BookingStore) Create(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[b.PaymentOrderRef]; ok {
		return domain.ErrOrderRefDuplicate
	}
	for _, existing := range s.bookings {
		if existing.ListingID == b.ListingID && existing.Status.Active() && existing.OverlapsRange(b.CheckIn, b.CheckOut) {
			return domain.ErrDatesUnavailable
		}
	}

	stored := *b
	s.bookings[b.ID] = &stored
	s.orders[b.PaymentOrderRef] = b.ID
	return nil
}

func (s *BookingStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *BookingStore) ListOverlapping(_ context.Context, listingID string, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.ListingID == listingID && b.Status.Active() && b.OverlapsRange(checkIn, checkOut) {
			cp := *b
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CheckIn.Before(res[j].CheckIn) })
	return res, nil
}

func (s *BookingStore) Confirm(_ context.Context, id, paymentProofRef string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if !b.CanTransition(domain.BookingStatusConfirmed) {
		return nil, domain.ErrAlreadyProcessed
	}

	b.Status = domain.BookingStatusConfirmed
	b.PaymentStatus = domain.PaymentStatusCaptured
	b.PaymentProofRef = paymentProofRef
	b.UpdatedAt = s.now().UTC()

	cp := *b
	return &cp, nil
}

func (s *BookingStore) CancelExpired(_ context.Context, createdBefore time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.Status != domain.BookingStatusPending || !b.CreatedAt.Before(createdBefore) {
			continue
		}
		b.Status = domain.BookingStatusCancelled
		b.PaymentStatus = domain.PaymentStatusFailed
		b.UpdatedAt = s.now().UTC()
		cp := *b
		res = append(res, &cp)
	}
	return res, nil
}

func (s *BookingStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			cp := *b
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

// Count returns how many stored bookings of a listing are in the given status.
func (s *BookingStore) Count(listingID string, status domain.BookingStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, b := range s.bookings {
		if b.ListingID == listingID && b.Status == status {
			n++
		}
	}
	return n
}
