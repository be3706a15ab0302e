package dto

import (
	"time"

	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/domain"
)

type PaymentOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type CreateBookingResponse struct {
	Message      string               `json:"message"`
	BookingID    string               `json:"bookingId"`
	PaymentOrder PaymentOrderResponse `json:"paymentOrder"`
}

type ConfirmBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	ListingID      string `json:"listingId"`
	UserID         string `json:"userId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	Guests         int    `json:"guests"`
	PriceTotal     int64  `json:"priceTotal"`
	Currency       string `json:"currency"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
	PaymentOrderID string `json:"paymentOrderId"`
	PaymentID      string `json:"paymentId,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type ErrorResponse struct {
	Error         string            `json:"error"`
	Kind          string            `json:"kind"`
	MissingFields []string          `json:"missingFields,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
}

func ToCreateBookingResponse(r *domain.Reservation) CreateBookingResponse {
	return CreateBookingResponse{
		Message:   "Booking initiated",
		BookingID: r.Booking.ID,
		PaymentOrder: PaymentOrderResponse{
			ID:       r.Order.ID,
			Amount:   r.Order.Amount,
			Currency: r.Order.Currency,
			Key:      r.Order.KeyID,
		},
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		ListingID:      b.ListingID,
		UserID:         b.UserID,
		CheckIn:        b.CheckIn.Format(dates.DayLayout),
		CheckOut:       b.CheckOut.Format(dates.DayLayout),
		Guests:         b.Guests,
		PriceTotal:     b.PriceTotal,
		Currency:       b.Currency,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		Phone:          b.Phone,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		PaymentOrderID: b.PaymentOrderRef,
		PaymentID:      b.PaymentProofRef,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

func NewValidationErrorResponse(verr *domain.ValidationError) ErrorResponse {
	resp := ErrorResponse{
		Error:         "validation failed",
		Kind:          "validation",
		MissingFields: verr.MissingFields(),
		Fields:        make(map[string]string, len(verr.Fields)),
	}
	if len(resp.MissingFields) == len(verr.Fields) {
		resp.Error = "missing required fields"
	}
	for _, f := range verr.Fields {
		if _, ok := resp.Fields[f.Field]; !ok {
			resp.Fields[f.Field] = f.Message
		}
	}
	return resp
}
