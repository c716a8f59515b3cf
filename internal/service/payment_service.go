package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/gateway"
	"github.com/viren1298/event-booking-system/internal/logger"
	"github.com/viren1298/event-booking-system/internal/metrics"
	"github.com/viren1298/event-booking-system/internal/repository"
	"go.uber.org/zap"
)

// PaymentService defines the interface for settlement business logic
type PaymentService interface {
	// SettleBooking charges a pending booking and confirms it on approval
	SettleBooking(ctx context.Context, identity domain.Identity, bookingID string) (*dto.SettleBookingResponse, error)

	// GetPayment retrieves a payment visible to the caller
	GetPayment(ctx context.Context, identity domain.Identity, paymentID string) (*dto.PaymentResponse, error)

	// GetBookingPayment retrieves the payment for a booking, if any
	GetBookingPayment(ctx context.Context, identity domain.Identity, bookingID string) (*dto.PaymentResponse, error)
}

// paymentService implements PaymentService
type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	ticketRepo  repository.TicketRepository
	eventRepo   repository.EventRepository
	gateway     gateway.PaymentGateway
	notifier    Notifier
	notifyWait  time.Duration
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	ticketRepo repository.TicketRepository,
	eventRepo repository.EventRepository,
	gw gateway.PaymentGateway,
	notifier Notifier,
) PaymentService {
	if notifier == nil {
		notifier = NewNoOpNotifier()
	}
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		ticketRepo:  ticketRepo,
		eventRepo:   eventRepo,
		gateway:     gw,
		notifier:    notifier,
		notifyWait:  5 * time.Second,
	}
}

// SettleBooking settles a pending booking. The charge amount is unit price
// times quantity. An approved charge writes the payment and confirms the
// booking atomically; a declined charge writes nothing and the booking
// stays pending, free to be retried or cancelled.
func (s *paymentService) SettleBooking(ctx context.Context, identity domain.Identity, bookingID string) (*dto.SettleBookingResponse, error) {
	if bookingID == "" {
		return nil, domain.ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.BelongsToUser(identity.UserID) {
		return nil, domain.ErrUnauthorized
	}

	if !booking.CanConfirm() {
		return nil, domain.ErrInvalidBookingState
	}

	ticket, err := s.ticketRepo.GetByID(ctx, booking.TicketID)
	if err != nil {
		return nil, err
	}

	amount := ticket.Price.Mul(decimal.NewFromInt(int64(booking.Quantity))).Round(2)

	resp, err := s.gateway.Charge(ctx, &gateway.ChargeRequest{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		Amount:      amount,
		Description: fmt.Sprintf("%s x%d", ticket.Type, booking.Quantity),
	})
	if err != nil {
		return nil, fmt.Errorf("payment gateway charge: %w", err)
	}

	if !resp.Success {
		metrics.Settlements.WithLabelValues(metrics.OutcomeDeclined).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrSettlementDeclined, resp.FailureReason)
	}

	payment, err := domain.NewPayment(uuid.New().String(), booking.ID, amount)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.CreateWithConfirm(ctx, payment); err != nil {
		// The charge went through but the booking was settled or cancelled
		// underneath us. The mock gateway has nothing to void; a real one
		// would be refunded here.
		if errors.Is(err, domain.ErrInvalidBookingState) {
			metrics.Settlements.WithLabelValues(metrics.OutcomeRejected).Inc()
		}
		return nil, err
	}

	if err := booking.Confirm(); err != nil {
		return nil, err
	}

	metrics.Settlements.WithLabelValues(metrics.OutcomeApproved).Inc()
	amountFloat, _ := amount.Float64()
	metrics.SettlementAmount.Observe(amountFloat)

	s.notifyConfirmed(booking, payment)

	return &dto.SettleBookingResponse{
		Booking: dto.BookingFromDomain(booking),
		Payment: dto.PaymentFromDomain(payment),
	}, nil
}

// GetPayment retrieves a payment. Visible to the booking's owner and admins.
func (s *paymentService) GetPayment(ctx context.Context, identity domain.Identity, paymentID string) (*dto.PaymentResponse, error) {
	if paymentID == "" {
		return nil, domain.ErrPaymentNotFound
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizePaymentAccess(ctx, identity, payment); err != nil {
		return nil, err
	}

	return dto.PaymentFromDomain(payment), nil
}

// GetBookingPayment retrieves the payment for a booking, if any
func (s *paymentService) GetBookingPayment(ctx context.Context, identity domain.Identity, bookingID string) (*dto.PaymentResponse, error) {
	if bookingID == "" {
		return nil, domain.ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.BelongsToUser(identity.UserID) && !identity.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	payment, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return dto.PaymentFromDomain(payment), nil
}

func (s *paymentService) authorizePaymentAccess(ctx context.Context, identity domain.Identity, payment *domain.Payment) error {
	if identity.IsAdmin() {
		return nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return domain.ErrUnauthorized
		}
		return err
	}

	if !booking.BelongsToUser(identity.UserID) {
		return domain.ErrUnauthorized
	}

	return nil
}

// notifyConfirmed sends the confirmation notification without blocking the
// settlement response. Delivery failures are logged and dropped; the
// settlement already committed.
func (s *paymentService) notifyConfirmed(booking *domain.Booking, payment *domain.Payment) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyWait)
		defer cancel()

		notification := &BookingNotification{
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			EventTitle: s.lookupEventTitle(ctx, booking.TicketID),
			Quantity:   booking.Quantity,
			Amount:     payment.Amount.StringFixed(2),
		}

		if err := s.notifier.NotifyBookingConfirmed(ctx, notification); err != nil {
			logger.Get().Warn("failed to send booking confirmation",
				zap.String("booking_id", notification.BookingID),
				zap.Error(err),
			)
		}
	}()
}

func (s *paymentService) lookupEventTitle(ctx context.Context, ticketID string) string {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return ""
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		return ""
	}

	return event.Title
}

// Ensure paymentService implements PaymentService
var _ PaymentService = (*paymentService)(nil)
