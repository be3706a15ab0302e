package domain

import (
	"errors"
	"strings"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found or unauthorized")
)

var (
	ErrDatesUnavailable  = errors.New("selected dates are not available")
	ErrAlreadyProcessed  = errors.New("booking payment already processed")
	ErrInvalidSignature  = errors.New("invalid payment signature")
	ErrOrderRefDuplicate = errors.New("payment order already attached to a booking")
)

var (
	ErrPaymentGateway = errors.New("payment gateway error")
	ErrPersistence    = errors.New("persistence error")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
)

type FieldError struct {
	Field   string
	Message string
	Missing bool
}

// ValidationError collects every field violation of a request so the caller
// can fix them in one round trip. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) AddMissing(field string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: "is required", Missing: true})
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) MissingFields() []string {
	var res []string
	for _, f := range e.Fields {
		if f.Missing {
			res = append(res, f.Field)
		}
	}
	return res
}

// Err returns nil when nothing was collected.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
