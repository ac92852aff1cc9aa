package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/booking"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP. Each handler reads
// the clock once and threads it through, keeping the rules deterministic.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), &b)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking.NewBookingView(created, time.Now())})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": view})
}

// GetBookingByReference handles GET /api/bookings/reference/:ref.
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	view, err := h.Svc.GetBookingByReference(c.Request.Context(), c.Param("ref"), time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": view})
}

// ListGuestBookings handles GET /api/bookings/guest/:guestID.
func (h *BookingHandler) ListGuestBookings(c *gin.Context) {
	views, err := h.Svc.ListGuestBookings(c.Request.Context(), c.Param("guestID"), time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

// ListHotelBookings handles GET /api/bookings/hotel/:hotelID.
func (h *BookingHandler) ListHotelBookings(c *gin.Context) {
	views, err := h.Svc.ListHotelBookings(c.Request.Context(), c.Param("hotelID"), time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

// ConfirmBooking handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	b, err := h.Svc.ConfirmBooking(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// QuoteCancellation handles GET /api/bookings/:id/cancellation-quote.
func (h *BookingHandler) QuoteCancellation(c *gin.Context) {
	quote, err := h.Svc.QuoteCancellation(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		CancelledBy string `json:"cancelledBy"`
		Reason      string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cancellation payload", err.Error())
		return
	}
	if input.CancelledBy == "" {
		input.CancelledBy = "guest"
	}

	b, err := h.Svc.CancelBooking(c.Request.Context(), c.Param("id"), input.CancelledBy, input.Reason, time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "cancellation": b.Cancellation})
}

// CheckIn handles POST /api/bookings/:id/check-in.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&input)

	b, err := h.Svc.RecordCheckIn(c.Request.Context(), c.Param("id"), input.Notes, time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CheckOut handles POST /api/bookings/:id/check-out.
func (h *BookingHandler) CheckOut(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&input)

	b, err := h.Svc.RecordCheckOut(c.Request.Context(), c.Param("id"), input.Notes, time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	b, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, time.Now())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CreatePaymentIntent handles POST /api/bookings/:id/payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	intentID, err := h.Svc.CreatePaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentIntentId": intentID})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var valErr *booking.ValidationError
	var inputErr *booking.InvalidInputError

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": valErr.Fields})
	case errors.As(err, &inputErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", inputErr.Reason)
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, booking.ErrNotCancellable):
		utils.JSONError(c, http.StatusConflict, "booking cannot be cancelled", "only confirmed bookings more than 24 hours before check-in can be cancelled")
	case errors.Is(err, booking.ErrStatusConflict):
		utils.JSONError(c, http.StatusConflict, "booking was updated concurrently", "please retry")
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
