package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/logger"
	"github.com/viren1298/event-booking-system/internal/metrics"
	"github.com/viren1298/event-booking-system/internal/repository"
	"go.uber.org/zap"
)

// BookingService defines the interface for booking business logic
type BookingService interface {
	// CreateBooking reserves stock and creates a pending booking
	CreateBooking(ctx context.Context, identity domain.Identity, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)

	// GetBooking retrieves a booking visible to the caller
	GetBooking(ctx context.Context, identity domain.Identity, bookingID string) (*dto.BookingResponse, error)

	// GetUserBookings retrieves the caller's bookings, newest first
	GetUserBookings(ctx context.Context, identity domain.Identity, limit, offset int) (*dto.BookingListResponse, error)

	// CancelBooking cancels a booking and releases its stock
	CancelBooking(ctx context.Context, identity domain.Identity, bookingID string) (*dto.BookingResponse, error)
}

// bookingService implements BookingService
type bookingService struct {
	bookingRepo repository.BookingRepository
	ticketRepo  repository.TicketRepository
	maxPageSize int
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	ticketRepo repository.TicketRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		ticketRepo:  ticketRepo,
		maxPageSize: 100,
	}
}

// CreateBooking reserves stock and creates a pending booking. Stock is
// taken before the booking row is written; if the write fails for any
// reason the reservation is rolled back so the ledger stays balanced.
func (s *bookingService) CreateBooking(ctx context.Context, identity domain.Identity, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if identity.UserID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if req == nil || req.TicketID == "" {
		return nil, domain.ErrInvalidTicketID
	}

	// Ticket existence is checked before the quantity: a request against
	// a missing ticket is a not-found, whatever else is wrong with it
	if _, err := s.ticketRepo.GetByID(ctx, req.TicketID); err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	// Advisory pre-check. The partial unique index on pending bookings is
	// the authoritative guard; this just fails fast without touching stock.
	exists, err := s.bookingRepo.ExistsPending(ctx, identity.UserID, req.TicketID)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.BookingsRejected.WithLabelValues("already_booked").Inc()
		return nil, domain.ErrAlreadyBooked
	}

	if err := s.ticketRepo.Reserve(ctx, req.TicketID, req.Quantity); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.BookingsRejected.WithLabelValues("insufficient_stock").Inc()
		}
		return nil, err
	}

	booking, err := domain.NewBooking(uuid.New().String(), identity.UserID, req.TicketID, req.Quantity)
	if err != nil {
		s.releaseReserved(ctx, req.TicketID, req.Quantity)
		return nil, err
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.releaseReserved(ctx, req.TicketID, req.Quantity)
		if errors.Is(err, domain.ErrAlreadyBooked) {
			metrics.BookingsRejected.WithLabelValues("already_booked").Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	return dto.BookingFromDomain(booking), nil
}

// GetBooking retrieves a booking. Customers see only their own bookings;
// admins see any.
func (s *bookingService) GetBooking(ctx context.Context, identity domain.Identity, bookingID string) (*dto.BookingResponse, error) {
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

	return dto.BookingFromDomain(booking), nil
}

// GetUserBookings retrieves the caller's bookings, newest first
func (s *bookingService) GetUserBookings(ctx context.Context, identity domain.Identity, limit, offset int) (*dto.BookingListResponse, error) {
	if identity.UserID == "" {
		return nil, domain.ErrInvalidUserID
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, identity.UserID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, dto.BookingFromDomain(b))
	}

	return &dto.BookingListResponse{
		Bookings: responses,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// CancelBooking cancels a booking and returns its quantity to stock. The
// repository performs the flip and the release in one transaction, so a
// cancel racing a settle resolves to exactly one winner.
func (s *bookingService) CancelBooking(ctx context.Context, identity domain.Identity, bookingID string) (*dto.BookingResponse, error) {
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

	if !booking.CanCancel() {
		return nil, domain.ErrInvalidBookingState
	}

	cancelled, err := s.bookingRepo.CancelAndRelease(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCancelled.Inc()

	return dto.BookingFromDomain(cancelled), nil
}

// releaseReserved returns reserved stock after a failed booking write.
// A failed release leaves stock understated until reconciled, which beats
// overselling, so it is logged rather than propagated.
func (s *bookingService) releaseReserved(ctx context.Context, ticketID string, quantity int) {
	if err := s.ticketRepo.Release(ctx, ticketID, quantity); err != nil && !errors.Is(err, domain.ErrTicketNotFound) {
		logger.Get().Error("failed to release reserved stock",
			zap.String("ticket_id", ticketID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
	}
}

// Ensure bookingService implements BookingService
var _ BookingService = (*bookingService)(nil)
