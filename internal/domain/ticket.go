package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ticket represents a bookable inventory line for an event. Quantity is the
// remaining stock; it only changes through reservation (decrement) and
// release (increment), and never goes negative.
type Ticket struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewTicket creates a ticket type under an event
func NewTicket(id, eventID, ticketType string, price decimal.Decimal, quantity int) (*Ticket, error) {
	if strings.TrimSpace(ticketType) == "" {
		return nil, ErrInvalidTicketType
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	return &Ticket{
		ID:        id,
		EventID:   eventID,
		Type:      ticketType,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// HasStock checks whether the remaining quantity covers a request
func (t *Ticket) HasStock(quantity int) bool {
	return t.Quantity >= quantity
}
