package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viren1298/event-booking-system/internal/domain"
)

func TestPostgresPaymentRepository_CreateWithConfirm(t *testing.T) {
	pool := getPostgresPool(t)
	defer pool.Close()

	repo := NewPostgresPaymentRepository(pool)
	bookingRepo := NewPostgresBookingRepository(pool)
	ctx := context.Background()

	ticketID := seedTicket(t, pool, 10)
	bookingID := seedPendingBooking(t, pool, ticketID, 2)

	payment, err := domain.NewPayment(uuid.New().String(), bookingID, decimal.RequireFromString("100.00"))
	if err != nil {
		t.Fatalf("NewPayment() error = %v", err)
	}

	if err := repo.CreateWithConfirm(ctx, payment); err != nil {
		t.Fatalf("CreateWithConfirm() error = %v", err)
	}

	booking, err := bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if booking.Status != domain.BookingStatusConfirmed {
		t.Errorf("booking Status = %v, want %v", booking.Status, domain.BookingStatusConfirmed)
	}
	if booking.ConfirmedAt == nil {
		t.Error("ConfirmedAt is nil, want timestamp")
	}

	retrieved, err := repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		t.Fatalf("GetByBookingID() error = %v", err)
	}
	if !retrieved.Amount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("Amount = %v, want 100.00", retrieved.Amount)
	}
	if retrieved.Status != domain.PaymentStatusSuccess {
		t.Errorf("payment Status = %v, want %v", retrieved.Status, domain.PaymentStatusSuccess)
	}
}

func TestPostgresPaymentRepository_CreateWithConfirm_NotPending(t *testing.T) {
	pool := getPostgresPool(t)
	defer pool.Close()

	repo := NewPostgresPaymentRepository(pool)
	bookingRepo := NewPostgresBookingRepository(pool)
	ctx := context.Background()

	ticketID := seedTicket(t, pool, 10)
	bookingID := seedPendingBooking(t, pool, ticketID, 1)
	if _, err := bookingRepo.CancelAndRelease(ctx, bookingID); err != nil {
		t.Fatalf("CancelAndRelease() error = %v", err)
	}

	payment, _ := domain.NewPayment(uuid.New().String(), bookingID, decimal.RequireFromString("50.00"))
	err := repo.CreateWithConfirm(ctx, payment)
	if !errors.Is(err, domain.ErrInvalidBookingState) {
		t.Errorf("CreateWithConfirm() error = %v, want %v", err, domain.ErrInvalidBookingState)
	}

	// The losing settlement must not leave a payment behind
	if _, err := repo.GetByBookingID(ctx, bookingID); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Errorf("GetByBookingID() error = %v, want %v", err, domain.ErrPaymentNotFound)
	}
}

func TestPostgresPaymentRepository_CreateWithConfirm_BookingNotFound(t *testing.T) {
	pool := getPostgresPool(t)
	defer pool.Close()

	repo := NewPostgresPaymentRepository(pool)
	ctx := context.Background()

	payment, _ := domain.NewPayment(uuid.New().String(), uuid.New().String(), decimal.RequireFromString("50.00"))
	err := repo.CreateWithConfirm(ctx, payment)
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("CreateWithConfirm() error = %v, want %v", err, domain.ErrBookingNotFound)
	}
}

func TestPostgresPaymentRepository_GetByID_NotFound(t *testing.T) {
	pool := getPostgresPool(t)
	defer pool.Close()

	repo := NewPostgresPaymentRepository(pool)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New().String())
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, domain.ErrPaymentNotFound)
	}
}

// Concurrent cancel and settle on the same pending booking. The conditional
// status updates arbitrate at the row: if cancel commits first the settle
// sees a cancelled booking, loses with ErrInvalidBookingState and writes no
// payment. If settle commits first, cancel lands afterwards on the confirmed
// booking (a legal transition), so a payment exists alongside the
// cancellation. Either way the booking ends cancelled, the stock is released
// exactly once, and a payment row exists only when the settle won.
func TestPostgresPaymentRepository_ConcurrentCancelAndSettle(t *testing.T) {
	pool := getPostgresPool(t)
	defer pool.Close()

	paymentRepo := NewPostgresPaymentRepository(pool)
	bookingRepo := NewPostgresBookingRepository(pool)
	ticketRepo := NewPostgresTicketRepository(pool)
	ctx := context.Background()

	const rounds = 10
	for i := 0; i < rounds; i++ {
		ticketID := seedTicket(t, pool, 10)
		if err := ticketRepo.Reserve(ctx, ticketID, 2); err != nil {
			t.Fatalf("Reserve() error = %v", err)
		}
		bookingID := seedPendingBooking(t, pool, ticketID, 2)

		payment, _ := domain.NewPayment(uuid.New().String(), bookingID, decimal.RequireFromString("100.00"))

		var wg sync.WaitGroup
		var cancelErr, settleErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cancelErr = bookingRepo.CancelAndRelease(ctx, bookingID)
		}()
		go func() {
			defer wg.Done()
			settleErr = paymentRepo.CreateWithConfirm(ctx, payment)
		}()
		wg.Wait()

		// Cancel is legal from both pending and confirmed, so it always lands
		if cancelErr != nil {
			t.Fatalf("round %d: CancelAndRelease() error = %v", i, cancelErr)
		}
		if settleErr != nil && !errors.Is(settleErr, domain.ErrInvalidBookingState) {
			t.Fatalf("round %d: CreateWithConfirm() error = %v, want nil or %v", i, settleErr, domain.ErrInvalidBookingState)
		}

		booking, err := bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			t.Fatalf("round %d: GetByID() error = %v", i, err)
		}
		if booking.Status != domain.BookingStatusCancelled {
			t.Errorf("round %d: Status = %v, want %v", i, booking.Status, domain.BookingStatusCancelled)
		}

		// Stock released exactly once regardless of who won the race
		if got := ticketQuantity(t, pool, ticketID); got != 10 {
			t.Errorf("round %d: quantity = %d, want 10", i, got)
		}

		_, paymentErr := paymentRepo.GetByBookingID(ctx, bookingID)
		if settleErr == nil && paymentErr != nil {
			t.Errorf("round %d: settle won but payment missing: %v", i, paymentErr)
		}
		if settleErr != nil && !errors.Is(paymentErr, domain.ErrPaymentNotFound) {
			t.Errorf("round %d: settle lost but payment error = %v, want %v", i, paymentErr, domain.ErrPaymentNotFound)
		}
	}
}

// Two settlements racing the same pending booking: the pending-status gate
// lets exactly one through, and the payments.booking_id unique constraint
// backs it up, so at most one payment row ever exists per booking.
func TestPostgresPaymentRepository_ConcurrentDoubleSettle(t *testing.T) {
	pool := getPostgresPool(t)
	defer pool.Close()

	repo := NewPostgresPaymentRepository(pool)
	ctx := context.Background()

	ticketID := seedTicket(t, pool, 10)
	bookingID := seedPendingBooking(t, pool, ticketID, 2)

	first, _ := domain.NewPayment(uuid.New().String(), bookingID, decimal.RequireFromString("100.00"))
	second, _ := domain.NewPayment(uuid.New().String(), bookingID, decimal.RequireFromString("100.00"))

	var wg sync.WaitGroup
	var firstErr, secondErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		firstErr = repo.CreateWithConfirm(ctx, first)
	}()
	go func() {
		defer wg.Done()
		secondErr = repo.CreateWithConfirm(ctx, second)
	}()
	wg.Wait()

	if (firstErr == nil) == (secondErr == nil) {
		t.Fatalf("firstErr = %v, secondErr = %v, want exactly one winner", firstErr, secondErr)
	}

	loserErr := firstErr
	if loserErr == nil {
		loserErr = secondErr
	}
	if !errors.Is(loserErr, domain.ErrInvalidBookingState) {
		t.Errorf("loser error = %v, want %v", loserErr, domain.ErrInvalidBookingState)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE booking_id = $1`, bookingID).Scan(&count); err != nil {
		t.Fatalf("Failed to count payments: %v", err)
	}
	if count != 1 {
		t.Errorf("payment rows = %d, want 1", count)
	}
}
