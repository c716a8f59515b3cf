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

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{pool: pool}
}

// CreateWithConfirm inserts the payment and confirms its booking in a single
// transaction. The conditional booking update gates the settlement: zero
// rows affected means a concurrent cancel or settle won, so the payment
// insert never happens and the transaction rolls back.
func (r *PostgresPaymentRepository) CreateWithConfirm(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	confirmQuery := `
		UPDATE bookings SET
			status = $2,
			confirmed_at = $3,
			updated_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	result, err := tx.Exec(ctx, confirmQuery, payment.BookingID, domain.BookingStatusConfirmed.String(), now)
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, payment.BookingID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check booking existence: %w", err)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrInvalidBookingState
	}

	insertQuery := `
		INSERT INTO payments (id, booking_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.Exec(ctx, insertQuery,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		string(payment.Status),
		payment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrPaymentAlreadyExists
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a payment by its ID
func (r *PostgresPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, amount, status, created_at
		FROM payments
		WHERE id = $1
	`

	return r.scanPayment(r.pool.QueryRow(ctx, query, id))
}

// GetByBookingID retrieves the payment for a booking, if any
func (r *PostgresPaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, amount, status, created_at
		FROM payments
		WHERE booking_id = $1
	`

	return r.scanPayment(r.pool.QueryRow(ctx, query, bookingID))
}

func (r *PostgresPaymentRepository) scanPayment(row pgx.Row) (*domain.Payment, error) {
	payment := &domain.Payment{}
	var status string

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&status,
		&payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	payment.Status = domain.PaymentStatus(status)
	return payment, nil
}

// Ensure PostgresPaymentRepository implements PaymentRepository
var _ PaymentRepository = (*PostgresPaymentRepository)(nil)
