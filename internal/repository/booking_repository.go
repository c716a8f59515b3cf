package repository

import (
	"context"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// BookingRepository defines data access for bookings
type BookingRepository interface {
	// Create inserts a new pending booking. A unique constraint on
	// (user_id, ticket_id) over pending rows backs the double-booking
	// guard; a violation surfaces as ErrAlreadyBooked.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by its ID
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetByUserID retrieves a user's bookings, newest first
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Booking, error)

	// ExistsPending reports whether the user already holds a pending
	// booking on the given ticket.
	ExistsPending(ctx context.Context, userID, ticketID string) (bool, error)

	// CancelAndRelease flips a pending or confirmed booking to cancelled
	// and returns its quantity to ticket stock, both in one transaction.
	// A booking already cancelled yields ErrInvalidBookingState and no
	// inventory change.
	CancelAndRelease(ctx context.Context, id string) (*domain.Booking, error)
}
