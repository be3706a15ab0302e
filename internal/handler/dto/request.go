package dto

import (
	"encoding/json"
	"strings"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

// CreateBookingRequest leaves presence and type checks to the service so that
// every bad field is reported at once. Price and guests stay raw so a string
// or fractional value becomes a field error instead of a decode failure.
type CreateBookingRequest struct {
	ListingID string          `json:"listingId"`
	CheckIn   string          `json:"checkIn"`
	CheckOut  string          `json:"checkOut"`
	Price     json.RawMessage `json:"price"`
	Guests    json.RawMessage `json:"guests"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
}

func (r CreateBookingRequest) ToInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		ListingID: r.ListingID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Price:     rawNumber(r.Price),
		Guests:    rawNumber(r.Guests),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// rawNumber returns the literal JSON text; null and absent become empty.
// Non-numeric literals are passed through and rejected by validation.
func rawNumber(raw json.RawMessage) json.Number {
	v := strings.TrimSpace(string(raw))
	if v == "null" {
		return ""
	}
	return json.Number(v)
}

// ConfirmBookingRequest also accepts the field names the gateway checkout
// widget posts back.
type ConfirmBookingRequest struct {
	BookingID         string `json:"bookingId"`
	PaymentProofID    string `json:"paymentProofId"`
	PaymentSignature  string `json:"paymentSignature"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r ConfirmBookingRequest) ToInput() domain.ConfirmPaymentInput {
	return domain.ConfirmPaymentInput{
		BookingID:       r.BookingID,
		PaymentProofRef: firstNonEmpty(r.PaymentProofID, r.RazorpayPaymentID),
		Signature:       firstNonEmpty(r.PaymentSignature, r.RazorpaySignature),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
