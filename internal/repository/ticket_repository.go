package repository

import (
	"context"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// TicketRepository defines data access for tickets, including the inventory
// ledger operations. Reserve and Release are the only paths that may change
// a ticket's remaining quantity outside of an organizer capacity edit.
type TicketRepository interface {
	// Create creates a new ticket type under an event
	Create(ctx context.Context, ticket *domain.Ticket) error

	// GetByID retrieves a ticket by its ID
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)

	// Update updates a ticket's label, price, and capacity
	Update(ctx context.Context, ticket *domain.Ticket) error

	// Delete deletes a ticket by its ID
	Delete(ctx context.Context, id string) error

	// Reserve atomically decrements the remaining quantity, failing with
	// ErrInsufficientStock when the decrement would go below zero. The
	// check and decrement are a single conditional update; concurrent
	// reservations on the same ticket can never jointly oversell it.
	Reserve(ctx context.Context, id string, quantity int) error

	// Release atomically increments the remaining quantity, reversing a
	// prior successful reservation.
	Release(ctx context.Context, id string, quantity int) error
}
