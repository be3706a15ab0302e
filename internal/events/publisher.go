// Package events publishes booking lifecycle events to a RabbitMQ topic
// exchange for downstream consumers such as mailers and analytics.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	KeyBookingCreated   = "booking.created"
	KeyBookingConfirmed = "booking.confirmed"
	KeyBookingExpired   = "booking.expired"
	KeyPaymentOrphaned  = "payment.orphaned"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logger.Logger
}

func NewPublisher(url, exchange string, log logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

type BookingEvent struct {
	Type            string `json:"type"`
	BookingID       string `json:"bookingId"`
	ListingID       string `json:"listingId"`
	UserID          string `json:"userId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`
	PaymentOrderRef string `json:"paymentOrderId"`
	PaymentProofRef string `json:"paymentId,omitempty"`
	PriceTotal      int64  `json:"priceTotal"`
	Currency        string `json:"currency"`
	OccurredAt      string `json:"occurredAt"`
}

func newBookingEvent(key string, b *domain.Booking) BookingEvent {
	return BookingEvent{
		Type:            key,
		BookingID:       b.ID,
		ListingID:       b.ListingID,
		UserID:          b.UserID,
		CheckIn:         b.CheckIn.Format(dates.DayLayout),
		CheckOut:        b.CheckOut.Format(dates.DayLayout),
		Guests:          b.Guests,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentOrderRef: b.PaymentOrderRef,
		PaymentProofRef: b.PaymentProofRef,
		PriceTotal:      b.PriceTotal,
		Currency:        b.Currency,
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func (p *Publisher) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	p.publishBooking(ctx, KeyBookingCreated, b)
}

func (p *Publisher) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	p.publishBooking(ctx, KeyBookingConfirmed, b)
}

func (p *Publisher) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	p.publishBooking(ctx, KeyBookingExpired, b)
}

// NotifyOrphanedPayment carries the late payment id so a refund consumer can
// act on it; the booking itself stays cancelled.
func (p *Publisher) NotifyOrphanedPayment(ctx context.Context, b *domain.Booking, paymentRef string) {
	ev := newBookingEvent(KeyPaymentOrphaned, b)
	ev.PaymentProofRef = paymentRef
	p.publish(ctx, KeyPaymentOrphaned, b.ID, ev)
}

func (p *Publisher) publishBooking(ctx context.Context, key string, b *domain.Booking) {
	p.publish(ctx, key, b.ID, newBookingEvent(key, b))
}

func (p *Publisher) publish(ctx context.Context, key, bookingID string, ev BookingEvent) {
	if err := p.PublishJSON(ctx, key, ev); err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("key", key),
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
