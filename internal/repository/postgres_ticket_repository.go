package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viren1298/event-booking-system/internal/domain"
)

// PostgresTicketRepository implements TicketRepository using PostgreSQL
type PostgresTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketRepository creates a new PostgresTicketRepository
func NewPostgresTicketRepository(pool *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{pool: pool}
}

// Create creates a new ticket type under an event
func (r *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (id, event_id, type, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.EventID,
		ticket.Type,
		ticket.Price,
		ticket.Quantity,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

// GetByID retrieves a ticket by its ID
func (r *PostgresTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `
		SELECT id, event_id, type, price, quantity, created_at, updated_at
		FROM tickets
		WHERE id = $1
	`

	ticket := &domain.Ticket{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.Type,
		&ticket.Price,
		&ticket.Quantity,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// Update updates a ticket's label, price, and capacity
func (r *PostgresTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		UPDATE tickets SET
			type = $2,
			price = $3,
			quantity = $4,
			updated_at = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.Type,
		ticket.Price,
		ticket.Quantity,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

// Delete deletes a ticket by its ID
func (r *PostgresTicketRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

// Reserve atomically decrements the remaining quantity. The stock check and
// the decrement are one statement, so the row lock taken by the update is
// the only arbiter between concurrent reservations on the same ticket.
func (r *PostgresTicketRepository) Reserve(ctx context.Context, id string, quantity int) error {
	query := `
		UPDATE tickets SET
			quantity = quantity - $2,
			updated_at = $3
		WHERE id = $1 AND quantity >= $2
	`

	result, err := r.pool.Exec(ctx, query, id, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reserve tickets: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Distinguish a missing ticket from an out-of-stock one
		var exists bool
		err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tickets WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check ticket existence: %w", err)
		}
		if !exists {
			return domain.ErrTicketNotFound
		}
		return domain.ErrInsufficientStock
	}

	return nil
}

// Release atomically increments the remaining quantity
func (r *PostgresTicketRepository) Release(ctx context.Context, id string, quantity int) error {
	query := `
		UPDATE tickets SET
			quantity = quantity + $2,
			updated_at = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to release tickets: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

// Ensure PostgresTicketRepository implements TicketRepository
var _ TicketRepository = (*PostgresTicketRepository)(nil)
