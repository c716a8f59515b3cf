package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/logger"
	"go.uber.org/zap"
)

// handleError converts domain errors to HTTP responses. Business rule
// rejections are client errors; anything unrecognized is an internal
// error and gets logged with the request path.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		errorJSON(c, http.StatusNotFound, err, "EVENT_NOT_FOUND")
	case errors.Is(err, domain.ErrTicketNotFound):
		errorJSON(c, http.StatusNotFound, err, "TICKET_NOT_FOUND")
	case errors.Is(err, domain.ErrBookingNotFound):
		errorJSON(c, http.StatusNotFound, err, "BOOKING_NOT_FOUND")
	case errors.Is(err, domain.ErrPaymentNotFound):
		errorJSON(c, http.StatusNotFound, err, "PAYMENT_NOT_FOUND")
	case errors.Is(err, domain.ErrInsufficientStock):
		errorJSON(c, http.StatusBadRequest, err, "INSUFFICIENT_STOCK")
	case errors.Is(err, domain.ErrAlreadyBooked):
		errorJSON(c, http.StatusBadRequest, err, "ALREADY_BOOKED")
	case errors.Is(err, domain.ErrInvalidBookingState):
		errorJSON(c, http.StatusBadRequest, err, "INVALID_BOOKING_STATE")
	case errors.Is(err, domain.ErrSettlementDeclined):
		errorJSON(c, http.StatusBadRequest, err, "SETTLEMENT_DECLINED")
	case errors.Is(err, domain.ErrPaymentAlreadyExists):
		errorJSON(c, http.StatusBadRequest, err, "PAYMENT_ALREADY_EXISTS")
	case errors.Is(err, domain.ErrUnauthorized):
		errorJSON(c, http.StatusForbidden, err, "FORBIDDEN")
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidTicketID),
		errors.Is(err, domain.ErrInvalidBookingID),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidTitle),
		errors.Is(err, domain.ErrInvalidEventDate),
		errors.Is(err, domain.ErrInvalidTicketType):
		errorJSON(c, http.StatusBadRequest, err, "INVALID_REQUEST")
	default:
		logger.Get().Error("internal error",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}
}

func errorJSON(c *gin.Context, status int, err error, code string) {
	c.JSON(status, dto.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
