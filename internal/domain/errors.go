package domain

import "errors"

// Domain errors
var (
	// Lookup errors
	ErrEventNotFound   = errors.New("event not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")

	// Booking errors
	ErrInsufficientStock   = errors.New("not enough tickets available")
	ErrAlreadyBooked       = errors.New("a pending booking already exists for this ticket")
	ErrInvalidBookingState = errors.New("operation not allowed in current booking status")

	// Payment errors
	ErrSettlementDeclined   = errors.New("payment declined")
	ErrPaymentAlreadyExists = errors.New("payment already exists for this booking")

	// Authorization errors
	ErrUnauthorized = errors.New("not authorized to access this resource")

	// Validation errors
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidTicketID   = errors.New("invalid ticket id")
	ErrInvalidBookingID  = errors.New("invalid booking id")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidTitle      = errors.New("title is required")
	ErrInvalidEventDate  = errors.New("event date is required")
	ErrInvalidTicketType = errors.New("ticket type is required")
)
