package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viren1298/event-booking-system/internal/domain"
)

const pgUniqueViolation = "23505"

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

// Create inserts a new pending booking. The partial unique index on
// (user_id, ticket_id) WHERE status = 'pending' closes the race the
// service-level pre-check leaves open.
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, ticket_id, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.TicketID,
		booking.Quantity,
		booking.Status.String(),
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by its ID
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, ticket_id, quantity, status, confirmed_at, cancelled_at, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// GetByUserID retrieves a user's bookings, newest first
func (r *PostgresBookingRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Booking, error) {
	query := `
		SELECT id, user_id, ticket_id, quantity, status, confirmed_at, cancelled_at, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by user ID: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// ExistsPending reports whether the user already holds a pending booking on
// the given ticket
func (r *PostgresBookingRepository) ExistsPending(ctx context.Context, userID, ticketID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND ticket_id = $2 AND status = 'pending'
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, ticketID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending booking: %w", err)
	}

	return exists, nil
}

// CancelAndRelease flips a pending or confirmed booking to cancelled and
// returns its quantity to ticket stock. The conditional update is the single
// arbitration gate: a concurrent settlement or a second cancellation loses
// the race and gets ErrInvalidBookingState, with no inventory change.
func (r *PostgresBookingRepository) CancelAndRelease(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	cancelQuery := `
		UPDATE bookings SET
			status = $2,
			cancelled_at = $3,
			updated_at = $3
		WHERE id = $1 AND status IN ('pending', 'confirmed')
		RETURNING id, user_id, ticket_id, quantity, status, confirmed_at, cancelled_at, created_at, updated_at
	`

	booking, err := scanBooking(tx.QueryRow(ctx, cancelQuery, id, domain.BookingStatusCancelled.String(), now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race or illegal state; find out which
			var status string
			err := r.pool.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, domain.ErrBookingNotFound
				}
				return nil, fmt.Errorf("failed to check booking status: %w", err)
			}
			return nil, domain.ErrInvalidBookingState
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	releaseQuery := `
		UPDATE tickets SET
			quantity = quantity + $2,
			updated_at = $3
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, releaseQuery, booking.TicketID, booking.Quantity, now); err != nil {
		return nil, fmt.Errorf("failed to release tickets: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, nil
}

// scanBooking reads one booking row from a pgx.Row or pgx.Rows
func scanBooking(row pgx.Row) (*domain.Booking, error) {
	booking := &domain.Booking{}
	var (
		status      string
		confirmedAt *time.Time
		cancelledAt *time.Time
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TicketID,
		&booking.Quantity,
		&status,
		&confirmedAt,
		&cancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	booking.ConfirmedAt = confirmedAt
	booking.CancelledAt = cancelledAt
	return booking, nil
}

// Ensure PostgresBookingRepository implements BookingRepository
var _ BookingRepository = (*PostgresBookingRepository)(nil)
