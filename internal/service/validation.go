package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultPhonePattern matches ten-digit Indian mobile numbers.
const DefaultPhonePattern = `^[6-9]\d{9}$`

const (
	// MaxPrice keeps the amount in minor units within int64.
	MaxPrice  int64 = math.MaxInt64 / minorUnits
	maxGuests int64 = math.MaxInt32
)

type reservationRequest struct {
	listingID string
	checkIn   time.Time
	checkOut  time.Time
	price     int64
	guests    int
	firstName string
	lastName  string
	email     string
	phone     string
}

// validateReservation checks the whole input and returns every violation at
// once. It performs no I/O.
func validateReservation(in domain.CreateReservationInput, cfg ReservationConfig, normalizer *dates.Normalizer) (*reservationRequest, error) {
	verr := &domain.ValidationError{}
	req := &reservationRequest{
		listingID: strings.TrimSpace(in.ListingID),
		firstName: strings.TrimSpace(in.FirstName),
		lastName:  strings.TrimSpace(in.LastName),
		email:     strings.TrimSpace(in.Email),
		phone:     strings.TrimSpace(in.Phone),
	}

	if req.listingID == "" {
		verr.AddMissing("listingId")
	} else if _, err := uuid.Parse(req.listingID); err != nil {
		verr.Add("listingId", "must be a valid UUID")
	}

	checkInOK := parseDay(verr, "checkIn", in.CheckIn, normalizer, &req.checkIn)
	checkOutOK := parseDay(verr, "checkOut", in.CheckOut, normalizer, &req.checkOut)
	if checkInOK && req.checkIn.Before(normalizer.Today()) {
		verr.Add("checkIn", "cannot be in the past")
	}
	if checkInOK && checkOutOK && !req.checkOut.After(req.checkIn) {
		verr.Add("checkOut", "must be after checkIn")
	}

	if price, ok := parseWhole(verr, "price", in.Price, cfg.MinPrice, MaxPrice); ok {
		req.price = price
	}
	if guests, ok := parseWhole(verr, "guests", in.Guests, 1, maxGuests); ok {
		req.guests = int(guests)
	}

	if req.firstName == "" {
		verr.AddMissing("firstName")
	}
	if req.lastName == "" {
		verr.AddMissing("lastName")
	}

	if req.email == "" {
		verr.AddMissing("email")
	} else if !emailPattern.MatchString(req.email) {
		verr.Add("email", "is not a valid email address")
	}

	if req.phone == "" {
		verr.AddMissing("phone")
	} else if cfg.PhonePattern != nil && !cfg.PhonePattern.MatchString(req.phone) {
		verr.Add("phone", "is not a valid phone number")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return req, nil
}

func parseDay(verr *domain.ValidationError, field, value string, normalizer *dates.Normalizer, dst *time.Time) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		verr.AddMissing(field)
		return false
	}
	t, err := normalizer.Parse(value)
	if err != nil {
		verr.Add(field, "must be a date in YYYY-MM-DD format")
		return false
	}
	*dst = t
	return true
}

// parseWhole accepts integral JSON numbers, including forms such as 100.0,
// within [lo, hi].
func parseWhole(verr *domain.ValidationError, field string, value json.Number, lo, hi int64) (int64, bool) {
	raw := strings.TrimSpace(value.String())
	if raw == "" {
		verr.AddMissing(field)
		return 0, false
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		switch {
		case ferr != nil && !errors.Is(ferr, strconv.ErrRange), math.IsNaN(f), f != math.Trunc(f):
			verr.Add(field, "must be an integer")
			return 0, false
		case f < float64(lo):
			verr.Add(field, fmt.Sprintf("must be at least %d", lo))
			return 0, false
		case f > float64(hi):
			verr.Add(field, fmt.Sprintf("must be at most %d", hi))
			return 0, false
		}
		n = int64(f)
	}

	switch {
	case n < lo:
		verr.Add(field, fmt.Sprintf("must be at least %d", lo))
		return 0, false
	case n > hi:
		verr.Add(field, fmt.Sprintf("must be at most %d", hi))
		return 0, false
	}
	return n, true
}

func validateConfirmation(in domain.ConfirmPaymentInput) error {
	verr := &domain.ValidationError{}

	if strings.TrimSpace(in.BookingID) == "" {
		verr.AddMissing("bookingId")
	}
	if strings.TrimSpace(in.PaymentProofRef) == "" {
		verr.AddMissing("paymentProofId")
	}
	if strings.TrimSpace(in.Signature) == "" {
		verr.AddMissing("paymentSignature")
	}

	return verr.Err()
}
