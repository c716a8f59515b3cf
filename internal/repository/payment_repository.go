package repository

import (
	"context"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// PaymentRepository defines data access for payments
type PaymentRepository interface {
	// CreateWithConfirm inserts the payment record and flips its booking
	// from pending to confirmed in one transaction. If the booking is no
	// longer pending (settled or cancelled concurrently) the whole
	// operation fails with ErrInvalidBookingState and nothing is written.
	CreateWithConfirm(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by its ID
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetByBookingID retrieves the payment for a booking, if any
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error)
}
