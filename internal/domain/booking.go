package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents one customer's claim on a quantity of a ticket type.
// Quantity is fixed at creation; only the status moves, and only along
// pending -> confirmed, pending -> cancelled, confirmed -> cancelled.
// Bookings are never deleted, they are retained for audit.
type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	TicketID    string        `json:"ticket_id"`
	Quantity    int           `json:"quantity"`
	Status      BookingStatus `json:"status"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewBooking creates a pending booking for a ticket
func NewBooking(id, userID, ticketID string, quantity int) (*Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidBookingID
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(ticketID) == "" {
		return nil, ErrInvalidTicketID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	return &Booking{
		ID:        id,
		UserID:    userID,
		TicketID:  ticketID,
		Quantity:  quantity,
		Status:    BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanConfirm checks if the booking can transition to confirmed
func (b *Booking) CanConfirm() bool {
	return b.Status == BookingStatusPending
}

// CanCancel checks if the booking can transition to cancelled
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Confirm marks the booking as confirmed
func (b *Booking) Confirm() error {
	if !b.CanConfirm() {
		return ErrInvalidBookingState
	}
	now := time.Now().UTC()
	b.Status = BookingStatusConfirmed
	b.ConfirmedAt = &now
	b.UpdatedAt = now
	return nil
}

// Cancel marks the booking as cancelled. The inventory the booking holds
// must be released alongside this transition, exactly once.
func (b *Booking) Cancel() error {
	if !b.CanCancel() {
		return ErrInvalidBookingState
	}
	now := time.Now().UTC()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

// BelongsToUser checks if the booking belongs to the specified user
func (b *Booking) BelongsToUser(userID string) bool {
	return b.UserID == userID
}
