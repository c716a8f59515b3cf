package dto

import (
	"time"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// CreateBookingRequest represents a request to book tickets
type CreateBookingRequest struct {
	TicketID string `json:"ticket_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	TicketID    string     `json:"ticket_id"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BookingListResponse represents a page of bookings
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// BookingFromDomain converts a domain Booking to BookingResponse
func BookingFromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		TicketID:    b.TicketID,
		Quantity:    b.Quantity,
		Status:      string(b.Status),
		ConfirmedAt: b.ConfirmedAt,
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
	}
}
