package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/samikhan1239/StayFinder/internal/handler/dto"
	"github.com/samikhan1239/StayFinder/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	CreateReservation(ctx context.Context, principal *domain.Principal, in domain.CreateReservationInput) (*domain.Reservation, error)
	GetBooking(ctx context.Context, principal *domain.Principal, id string) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, principal *domain.Principal) ([]*domain.Booking, error)
}

type ReconcilerSvc interface {
	ConfirmPayment(ctx context.Context, principal *domain.Principal, in domain.ConfirmPaymentInput) (*domain.Booking, error)
}

type Handler struct {
	reservationService ReservationSvc
	reconcilerService  ReconcilerSvc
}

func NewHandler(reservationService ReservationSvc, reconcilerService ReconcilerSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		reconcilerService:  reconcilerService,
	}
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	res, err := h.reservationService.CreateReservation(c.Request.Context(), middleware.Principal(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateBookingResponse(res))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	var req dto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	booking, err := h.reconcilerService.ConfirmPayment(c.Request.Context(), middleware.Principal(c), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmBookingResponse{
		Message: "Booking confirmed successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.reservationService.GetBooking(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.reservationService.ListMyBookings(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "invalid request body: " + err.Error(),
		Kind:  "validation",
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(verr))

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: "validation"})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized", Kind: "unauthorized"})

	case errors.Is(err, domain.ErrListingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrListingNotFound.Error(), Kind: "not_found"})

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrBookingNotFound.Error(), Kind: "not_found"})

	case errors.Is(err, domain.ErrDatesUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrDatesUnavailable.Error(), Kind: "conflict"})

	case errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrAlreadyProcessed.Error(), Kind: "already_processed"})

	case errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrInvalidSignature.Error(), Kind: "authenticity"})

	case errors.Is(err, domain.ErrPaymentGateway):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create payment order", Kind: "payment_gateway"})

	case errors.Is(err, domain.ErrPersistence), errors.Is(err, domain.ErrOrderRefDuplicate):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Kind: "persistence"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Kind: "internal"})
	}
}
