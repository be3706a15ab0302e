package domain

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses block the booked dates for other reservations.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
)

type Booking struct {
	ID              string        `json:"id"`
	ListingID       string        `json:"listing_id"`
	UserID          string        `json:"user_id"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	Guests          int           `json:"guests"`
	PriceTotal      int64         `json:"price_total"`
	Currency        string        `json:"currency"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentOrderRef string        `json:"payment_order_ref"`
	PaymentProofRef string        `json:"payment_proof_ref,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Overlaps reports whether the half-open ranges [aIn, aOut) and [bIn, bOut)
// share at least one day. A checkout on day N does not collide with a
// check-in on day N.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	return Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut)
}

// CanTransition encodes the booking state machine. Confirmed and cancelled
// bookings are terminal.
func (b *Booking) CanTransition(to BookingStatus) bool {
	if b.Status != BookingStatusPending {
		return false
	}
	return to == BookingStatusConfirmed || to == BookingStatusCancelled
}

// Reservation is the result of a successful reservation: the provisional
// booking and the payment order the client must settle.
type Reservation struct {
	Booking *Booking
	Order   *PaymentOrder
}

// CreateReservationInput keeps price and guests as raw JSON numbers; an
// empty value means the field was absent.
type CreateReservationInput struct {
	ListingID string
	CheckIn   string
	CheckOut  string
	Price     json.Number
	Guests    json.Number
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type ConfirmPaymentInput struct {
	BookingID       string
	PaymentProofRef string
	Signature       string
}
