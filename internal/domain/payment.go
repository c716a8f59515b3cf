package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement outcome recorded for a booking
type PaymentStatus string

const (
	// PaymentStatusSuccess is the only persisted outcome: a declined
	// settlement produces no payment record at all.
	PaymentStatusSuccess PaymentStatus = "success"
)

// Payment represents a successful settlement for exactly one booking.
// Amount is unit price times quantity, fixed at settlement time, and the
// record is immutable once created.
type Payment struct {
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewPayment creates a settled payment record for a booking
func NewPayment(id, bookingID string, amount decimal.Decimal) (*Payment, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, ErrInvalidBookingID
	}
	if amount.IsNegative() {
		return nil, ErrInvalidPrice
	}

	return &Payment{
		ID:        id,
		BookingID: bookingID,
		Amount:    amount.Round(2),
		Status:    PaymentStatusSuccess,
		CreatedAt: time.Now().UTC(),
	}, nil
}
