package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viren1298/event-booking-system/internal/service"
)

// PaymentHandler handles settlement HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// SettleBooking handles POST /bookings/:id/settle
func (h *PaymentHandler) SettleBooking(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	result, err := h.paymentService.SettleBooking(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	result, err := h.paymentService.GetPayment(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookingPayment handles GET /bookings/:id/payment
func (h *PaymentHandler) GetBookingPayment(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	result, err := h.paymentService.GetBookingPayment(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
