package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viren1298/event-booking-system/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Date,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by its ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, location, date, created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

// List retrieves events matching the filter, newest event date first,
// along with the total match count for pagination.
func (r *PostgresEventRepository) List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter != nil {
		if filter.Search != "" {
			conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
			args = append(args, "%"+filter.Search+"%")
			argPos++
		}
		if filter.Location != "" {
			conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", argPos))
			args = append(args, "%"+filter.Location+"%")
			argPos++
		}
		if filter.DateFrom != "" {
			conditions = append(conditions, fmt.Sprintf("date >= $%d", argPos))
			args = append(args, filter.DateFrom)
			argPos++
		}
		if filter.DateTo != "" {
			conditions = append(conditions, fmt.Sprintf("date <= $%d", argPos))
			args = append(args, filter.DateTo)
			argPos++
		}
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, title, description, location, date, created_by, created_at, updated_at
		FROM events
		%s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read events: %w", err)
	}

	return events, total, nil
}

// Update updates an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events SET
			title = $2,
			description = $3,
			location = $4,
			date = $5,
			updated_at = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Date,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete deletes an event. Tickets and bookings under the event are
// removed by the foreign key cascade.
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// GetTickets returns the ticket tiers on sale for an event
func (r *PostgresEventRepository) GetTickets(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check event existence: %w", err)
	}
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	query := `
		SELECT id, event_id, type, price, quantity, created_at, updated_at
		FROM tickets
		WHERE event_id = $1
		ORDER BY price ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*domain.Ticket{}
	for rows.Next() {
		ticket := &domain.Ticket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.EventID,
			&ticket.Type,
			&ticket.Price,
			&ticket.Quantity,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tickets: %w", err)
	}

	return tickets, nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Date,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// Ensure PostgresEventRepository implements EventRepository
var _ EventRepository = (*PostgresEventRepository)(nil)
