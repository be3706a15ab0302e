package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/samikhan1239/StayFinder/internal/payment"
	"github.com/samikhan1239/StayFinder/internal/repository/memory"
	"github.com/samikhan1239/StayFinder/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ListingID:       testListingID,
		UserID:          "u1",
		CheckIn:         utcDay(2025, 3, 1),
		CheckOut:        utcDay(2025, 3, 5),
		Guests:          2,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusCreated,
		PaymentOrderRef: "order_1",
		CreatedAt:       testNow,
	}
}

func TestReconcilerService_ConfirmPayment_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewReconcilerService(bookingRepo, gateway, notifier, newTestLogger(t))

	id := uuid.New().String()
	confirmed := pendingBooking(id)
	confirmed.Status = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCaptured
	confirmed.PaymentProofRef = "pay_1"

	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(pendingBooking(id), nil)
	gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
	bookingRepo.EXPECT().Confirm(mock.Anything, id, "pay_1").Return(confirmed, nil)
	done, notify := signalled()
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Run(notify).Once()

	b, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID:       id,
		PaymentProofRef: "pay_1",
		Signature:       "sig",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "pay_1", b.PaymentProofRef)

	waitNotified(t, done, 1)
}

func TestReconcilerService_ConfirmPayment_MissingFields(t *testing.T) {
	svc := NewReconcilerService(
		mocks.NewMockBookingRepo(t), mocks.NewMockPaymentGateway(t), mocks.NewMockBookingNotifier(t), newTestLogger(t),
	)

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"bookingId", "paymentProofId", "paymentSignature"}, verr.MissingFields())
}

func TestReconcilerService_ConfirmPayment_InvalidID(t *testing.T) {
	svc := NewReconcilerService(
		mocks.NewMockBookingRepo(t), mocks.NewMockPaymentGateway(t), mocks.NewMockBookingNotifier(t), newTestLogger(t),
	)

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: "abc", PaymentProofRef: "pay_1", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReconcilerService_ConfirmPayment_OtherOwner(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewReconcilerService(bookingRepo, mocks.NewMockPaymentGateway(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := uuid.New().String()
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(pendingBooking(id), nil)

	_, err := svc.ConfirmPayment(context.Background(), &domain.Principal{UserID: "u2"}, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_1", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReconcilerService_ConfirmPayment_BookingNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewReconcilerService(bookingRepo, mocks.NewMockPaymentGateway(t), mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := uuid.New().String()
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_1", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReconcilerService_ConfirmPayment_InvalidSignature(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewReconcilerService(bookingRepo, gateway, mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := uuid.New().String()
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(pendingBooking(id), nil)
	gateway.EXPECT().VerifySignature("order_1", "pay_1", "forged").Return(false)

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_1", Signature: "forged",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestReconcilerService_ConfirmPayment_AlreadyConfirmed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewReconcilerService(bookingRepo, gateway, mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := uuid.New().String()
	b := pendingBooking(id)
	b.Status = domain.BookingStatusConfirmed
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(b, nil)
	gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_1", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestReconcilerService_ConfirmPayment_LostCompareAndSet(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewReconcilerService(bookingRepo, gateway, mocks.NewMockBookingNotifier(t), newTestLogger(t))

	id := uuid.New().String()
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(pendingBooking(id), nil)
	gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
	bookingRepo.EXPECT().Confirm(mock.Anything, id, "pay_1").Return(nil, domain.ErrAlreadyProcessed)

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_1", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func orphanSignal() (chan string, func(context.Context, *domain.Booking, string)) {
	ch := make(chan string, 4)
	return ch, func(_ context.Context, _ *domain.Booking, paymentRef string) { ch <- paymentRef }
}

func waitOrphan(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case ref := <-ch:
		return ref
	case <-time.After(time.Second):
		t.Fatal("orphaned payment was not reported")
		return ""
	}
}

func TestReconcilerService_ConfirmPayment_ExpiredHoldReportsPayment(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewReconcilerService(bookingRepo, gateway, notifier, newTestLogger(t))

	id := uuid.New().String()
	b := pendingBooking(id)
	b.Status = domain.BookingStatusCancelled
	b.PaymentStatus = domain.PaymentStatusFailed
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(b, nil)
	gateway.EXPECT().VerifySignature("order_1", "pay_late", "sig").Return(true)
	done, notify := orphanSignal()
	notifier.EXPECT().NotifyOrphanedPayment(mock.Anything, b, "pay_late").Run(notify).Once()

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_late", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, "pay_late", waitOrphan(t, done))
}

func TestReconcilerService_ConfirmPayment_LostToExpiryReportsPayment(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewReconcilerService(bookingRepo, gateway, notifier, newTestLogger(t))

	id := uuid.New().String()
	expired := pendingBooking(id)
	expired.Status = domain.BookingStatusCancelled

	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(pendingBooking(id), nil).Once()
	gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
	bookingRepo.EXPECT().Confirm(mock.Anything, id, "pay_1").Return(nil, domain.ErrAlreadyProcessed)
	bookingRepo.EXPECT().GetByID(mock.Anything, id).Return(expired, nil).Once()
	done, notify := orphanSignal()
	notifier.EXPECT().NotifyOrphanedPayment(mock.Anything, expired, "pay_1").Run(notify).Once()

	_, err := svc.ConfirmPayment(context.Background(), alice, domain.ConfirmPaymentInput{
		BookingID: id, PaymentProofRef: "pay_1", Signature: "sig",
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, "pay_1", waitOrphan(t, done))
}

func TestReconcilerService_ConfirmPayment_AfterHoldExpiry(t *testing.T) {
	store := memory.NewBookingStore()
	gateway := payment.NewRazorpay("rzp_test_key", "secret")
	notifier := mocks.NewMockBookingNotifier(t)
	done, notify := orphanSignal()
	notifier.EXPECT().NotifyOrphanedPayment(mock.Anything, mock.Anything, "pay_1").Run(notify).Once()

	svc := NewReconcilerService(store, gateway, notifier, newTestLogger(t))
	ctx := context.Background()

	id := uuid.New().String()
	require.NoError(t, store.Create(ctx, pendingBooking(id)))
	released, err := store.CancelExpired(ctx, testNow.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, released, 1)

	_, err = svc.ConfirmPayment(ctx, alice, domain.ConfirmPaymentInput{
		BookingID:       id,
		PaymentProofRef: "pay_1",
		Signature:       gateway.Sign("order_1", "pay_1"),
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, "pay_1", waitOrphan(t, done))

	stored, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, stored.Status)
	assert.Empty(t, stored.PaymentProofRef)
}

func TestReconcilerService_ConfirmPayment_Idempotent(t *testing.T) {
	store := memory.NewBookingStore()
	gateway := payment.NewRazorpay("rzp_test_key", "secret")
	notifier := mocks.NewMockBookingNotifier(t)
	done, notify := signalled()
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything).Run(notify).Once()

	svc := NewReconcilerService(store, gateway, notifier, newTestLogger(t))
	ctx := context.Background()

	id := uuid.New().String()
	require.NoError(t, store.Create(ctx, pendingBooking(id)))

	in := domain.ConfirmPaymentInput{
		BookingID:       id,
		PaymentProofRef: "pay_1",
		Signature:       gateway.Sign("order_1", "pay_1"),
	}

	_, err := svc.ConfirmPayment(ctx, alice, in)
	require.NoError(t, err)

	second := in
	second.PaymentProofRef = "pay_2"
	second.Signature = gateway.Sign("order_1", "pay_2")
	_, err = svc.ConfirmPayment(ctx, alice, second)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	stored, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, stored.Status)
	assert.Equal(t, domain.PaymentStatusCaptured, stored.PaymentStatus)
	assert.Equal(t, "pay_1", stored.PaymentProofRef)

	waitNotified(t, done, 1)
}

func TestReconcilerService_ConfirmPayment_TamperedSignatureKeepsState(t *testing.T) {
	store := memory.NewBookingStore()
	gateway := payment.NewRazorpay("rzp_test_key", "secret")
	svc := NewReconcilerService(store, gateway, mocks.NewMockBookingNotifier(t), newTestLogger(t))
	ctx := context.Background()

	id := uuid.New().String()
	require.NoError(t, store.Create(ctx, pendingBooking(id)))

	// a valid signature for a different order must not confirm this booking
	_, err := svc.ConfirmPayment(ctx, alice, domain.ConfirmPaymentInput{
		BookingID:       id,
		PaymentProofRef: "pay_1",
		Signature:       gateway.Sign("order_2", "pay_1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	stored, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	assert.Equal(t, domain.PaymentStatusCreated, stored.PaymentStatus)
	assert.Empty(t, stored.PaymentProofRef)
}
