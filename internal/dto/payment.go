package dto

import (
	"time"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// SettleBookingResponse represents the result of settling a booking
type SettleBookingResponse struct {
	Booking *BookingResponse `json:"booking"`
	Payment *PaymentResponse `json:"payment"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentFromDomain converts a domain Payment to PaymentResponse.
// Amounts render as fixed two-decimal strings so clients never see
// float artifacts.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount.StringFixed(2),
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
