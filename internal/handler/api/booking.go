package api

import (
	"net/http"

	"happy-hotel/internal/domain/booking"
	reqdto "happy-hotel/internal/handler/dto/request"
	resdto "happy-hotel/internal/handler/dto/response"
	"happy-hotel/internal/handler/httperr"
	"happy-hotel/internal/pkg/config"
	"happy-hotel/internal/pkg/errs"
	"happy-hotel/internal/pkg/metrics"
	"happy-hotel/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ForeignCurrency names the currency that quotes are converted into.
type ForeignCurrency interface {
	Code() string
}

type BookingHandler struct {
	uc      usecase.BookingUseCase
	pricing config.PricingConfig
	foreign ForeignCurrency
}

func NewBookingHandler(uc usecase.BookingUseCase, cfg config.Config, foreign ForeignCurrency) *BookingHandler {
	return &BookingHandler{uc: uc, pricing: cfg.Pricing, foreign: foreign}
}

// @Summary Room availability
// @Description Total guest capacity of the rooms that are currently free
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 500 {object} map[string]string
// @Router /rooms/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	places, err := h.uc.GetAvailablePlaceCount(c.Request.Context())
	metrics.Observe("availability", err)
	if err != nil {
		abortWithBookingError(c, err, "Failed to count available places")
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{AvailablePlaces: places})
}

// @Summary Price quote
// @Description Price of a stay in the base and the foreign currency
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{
		Price:           h.uc.CalculatePrice(domainReq),
		Currency:        h.pricing.BaseCurrency,
		ForeignPrice:    h.uc.CalculatePriceInForeignCurrency(domainReq),
		ForeignCurrency: h.foreign.Code(),
	})
}

// @Summary Create booking
// @Description Allocate a room, charge prepaid bookings, persist and send a confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	id, err := h.uc.MakeBooking(c.Request.Context(), domainReq)
	metrics.Observe("make_booking", err)
	if err != nil {
		abortWithBookingError(c, err, "Create booking failed")
		return
	}

	c.Header("Location", "/api/bookings/"+id)
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: id})
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	req, err := h.uc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithBookingError(c, err, "Failed to get booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(req))
}

// @Summary Cancel booking
// @Description Release the booked room and delete the booking. Payments are not refunded.
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	err := h.uc.CancelBooking(c.Request.Context(), c.Param("id"))
	metrics.Observe("cancel_booking", err)
	if err != nil {
		abortWithBookingError(c, err, "Cancel booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func abortWithBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, booking.ErrInvalidStayDates), errs.Is(err, booking.ErrInvalidRoomCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, booking.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, booking.ErrNoRoomAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "No room available", nil)
	case errs.Is(err, booking.ErrPaymentDeclined):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment declined", nil)
	case errs.Is(err, booking.ErrNotificationFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking saved but confirmation could not be sent", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
