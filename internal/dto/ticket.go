package dto

import (
	"time"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// CreateTicketRequest represents a request to put a ticket tier on sale
type CreateTicketRequest struct {
	EventID  string `json:"event_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateTicketRequest represents a request to update a ticket tier.
// Nil fields are left unchanged.
type UpdateTicketRequest struct {
	Type     *string `json:"type,omitempty"`
	Price    *string `json:"price,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
}

// TicketResponse represents a ticket tier in API responses
type TicketResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketFromDomain converts a domain Ticket to TicketResponse
func TicketFromDomain(t *domain.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:        t.ID,
		EventID:   t.EventID,
		Type:      t.Type,
		Price:     t.Price.StringFixed(2),
		Quantity:  t.Quantity,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TicketsFromDomain converts a slice of domain Tickets
func TicketsFromDomain(tickets []*domain.Ticket) []*TicketResponse {
	out := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, TicketFromDomain(t))
	}
	return out
}
