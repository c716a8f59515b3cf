package service

import (
	"context"

	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/gateway"
	"github.com/viren1298/event-booking-system/internal/repository"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	CreateFunc           func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserIDFunc      func(ctx context.Context, userID string, limit, offset int) ([]*domain.Booking, error)
	ExistsPendingFunc    func(ctx context.Context, userID, ticketID string) (bool, error)
	CancelAndReleaseFunc func(ctx context.Context, id string) (*domain.Booking, error)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Booking, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID, limit, offset)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) ExistsPending(ctx context.Context, userID, ticketID string) (bool, error) {
	if m.ExistsPendingFunc != nil {
		return m.ExistsPendingFunc(ctx, userID, ticketID)
	}
	return false, nil
}

func (m *MockBookingRepository) CancelAndRelease(ctx context.Context, id string) (*domain.Booking, error) {
	if m.CancelAndReleaseFunc != nil {
		return m.CancelAndReleaseFunc(ctx, id)
	}
	return nil, domain.ErrBookingNotFound
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	CreateFunc  func(ctx context.Context, ticket *domain.Ticket) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Ticket, error)
	UpdateFunc  func(ctx context.Context, ticket *domain.Ticket) error
	DeleteFunc  func(ctx context.Context, id string) error
	ReserveFunc func(ctx context.Context, id string, quantity int) error
	ReleaseFunc func(ctx context.Context, id string, quantity int) error
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ticket)
	}
	return nil
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrTicketNotFound
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ticket)
	}
	return nil
}

func (m *MockTicketRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTicketRepository) Reserve(ctx context.Context, id string, quantity int) error {
	if m.ReserveFunc != nil {
		return m.ReserveFunc(ctx, id, quantity)
	}
	return nil
}

func (m *MockTicketRepository) Release(ctx context.Context, id string, quantity int) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, id, quantity)
	}
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	CreateWithConfirmFunc func(ctx context.Context, payment *domain.Payment) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Payment, error)
	GetByBookingIDFunc    func(ctx context.Context, bookingID string) (*domain.Payment, error)
}

func (m *MockPaymentRepository) CreateWithConfirm(ctx context.Context, payment *domain.Payment) error {
	if m.CreateWithConfirmFunc != nil {
		return m.CreateWithConfirmFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	if m.GetByBookingIDFunc != nil {
		return m.GetByBookingIDFunc(ctx, bookingID)
	}
	return nil, domain.ErrPaymentNotFound
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	CreateFunc     func(ctx context.Context, event *domain.Event) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Event, error)
	ListFunc       func(ctx context.Context, filter *repository.EventFilter, limit, offset int) ([]*domain.Event, int, error)
	UpdateFunc     func(ctx context.Context, event *domain.Event) error
	DeleteFunc     func(ctx context.Context, id string) error
	GetTicketsFunc func(ctx context.Context, eventID string) ([]*domain.Ticket, error)
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrEventNotFound
}

func (m *MockEventRepository) List(ctx context.Context, filter *repository.EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, limit, offset)
	}
	return []*domain.Event{}, 0, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockEventRepository) GetTickets(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	if m.GetTicketsFunc != nil {
		return m.GetTicketsFunc(ctx, eventID)
	}
	return []*domain.Ticket{}, nil
}

// MockPaymentGateway is a mock implementation of gateway.PaymentGateway
type MockPaymentGateway struct {
	ChargeFunc func(ctx context.Context, req *gateway.ChargeRequest) (*gateway.ChargeResponse, error)
}

func (m *MockPaymentGateway) Charge(ctx context.Context, req *gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, req)
	}
	return &gateway.ChargeResponse{Success: true, TransactionID: "test-txn"}, nil
}

func (m *MockPaymentGateway) Name() string {
	return "mock"
}

// CaptureNotifier records notifications on a channel so tests can wait
// for the asynchronous send.
type CaptureNotifier struct {
	Sent chan *BookingNotification
}

func NewCaptureNotifier() *CaptureNotifier {
	return &CaptureNotifier{Sent: make(chan *BookingNotification, 1)}
}

func (n *CaptureNotifier) NotifyBookingConfirmed(ctx context.Context, notification *BookingNotification) error {
	n.Sent <- notification
	return nil
}
