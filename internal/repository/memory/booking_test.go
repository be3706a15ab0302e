package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func newBooking(listingID string, in, out time.Time) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New().String(),
		ListingID:       listingID,
		UserID:          "u1",
		CheckIn:         in,
		CheckOut:        out,
		Guests:          2,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusCreated,
		PaymentOrderRef: "order_" + uuid.New().String(),
		CreatedAt:       time.Now().UTC(),
	}
}

func TestBookingStore_Create_RejectsOverlap(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newBooking("l1", day(1), day(5))))

	err := s.Create(ctx, newBooking("l1", day(4), day(8)))
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)

	assert.NoError(t, s.Create(ctx, newBooking("l1", day(5), day(8))))
	assert.NoError(t, s.Create(ctx, newBooking("l2", day(1), day(5))))
}

func TestBookingStore_Create_IgnoresCancelled(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	b := newBooking("l1", day(1), day(5))
	b.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, s.Create(ctx, b))

	expired, err := s.CancelExpired(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, expired, 1)

	assert.NoError(t, s.Create(ctx, newBooking("l1", day(2), day(3))))
}

func TestBookingStore_Create_DuplicateOrderRef(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	a := newBooking("l1", day(1), day(2))
	b := newBooking("l2", day(1), day(2))
	b.PaymentOrderRef = a.PaymentOrderRef

	require.NoError(t, s.Create(ctx, a))
	assert.ErrorIs(t, s.Create(ctx, b), domain.ErrOrderRefDuplicate)
}

func TestBookingStore_Create_ConcurrentOverlapping(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	const attempts = 32
	var (
		wg      sync.WaitGroup
		success atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Create(ctx, newBooking("l1", day(1+i%3), day(6))); err == nil {
				success.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
	assert.Equal(t, 1, s.Count("l1", domain.BookingStatusPending))
}

func TestBookingStore_Confirm_CompareAndSet(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	b := newBooking("l1", day(1), day(5))
	require.NoError(t, s.Create(ctx, b))

	confirmed, err := s.Confirm(ctx, b.ID, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, domain.PaymentStatusCaptured, confirmed.PaymentStatus)
	assert.Equal(t, "pay_1", confirmed.PaymentProofRef)

	_, err = s.Confirm(ctx, b.ID, "pay_2")
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	stored, err := s.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "pay_1", stored.PaymentProofRef)
}

func TestBookingStore_Confirm_NotFound(t *testing.T) {
	s := NewBookingStore()

	_, err := s.Confirm(context.Background(), "missing", "pay_1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingStore_Create_CancelledContext(t *testing.T) {
	s := NewBookingStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Create(ctx, newBooking("l1", day(1), day(5)))

	require.Error(t, err)
	assert.Equal(t, 0, s.Count("l1", domain.BookingStatusPending))
}

func TestBookingStore_ListByUser_NewestFirst(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	older := newBooking("l1", day(1), day(2))
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newBooking("l1", day(3), day(4))

	require.NoError(t, s.Create(ctx, older))
	require.NoError(t, s.Create(ctx, newer))

	res, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, newer.ID, res[0].ID)
}
