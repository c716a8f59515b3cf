package repository

import (
	"context"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// EventFilter holds optional filters for listing events
type EventFilter struct {
	Search   string // matches title or description
	Location string
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
}

// IsEmpty reports whether no filter is set
func (f *EventFilter) IsEmpty() bool {
	return f == nil || (f.Search == "" && f.Location == "" && f.DateFrom == "" && f.DateTo == "")
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error

	// GetTickets returns the ticket tiers on sale for an event.
	GetTickets(ctx context.Context, eventID string) ([]*domain.Ticket, error)
}
