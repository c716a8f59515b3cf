package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/repository"
)

// TicketService defines the interface for ticket catalog business logic
type TicketService interface {
	// CreateTicket puts a ticket tier on sale under an event
	CreateTicket(ctx context.Context, identity domain.Identity, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)

	// GetTicket retrieves a single ticket tier
	GetTicket(ctx context.Context, ticketID string) (*dto.TicketResponse, error)

	// UpdateTicket updates a ticket tier's label, price, or capacity
	UpdateTicket(ctx context.Context, identity domain.Identity, ticketID string, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)

	// DeleteTicket takes a ticket tier off sale
	DeleteTicket(ctx context.Context, identity domain.Identity, ticketID string) error
}

// eventCacheInvalidator is implemented by cached event repositories.
// Ticket writes change the availability shown on event pages, so the
// event caches are dropped after every write.
type eventCacheInvalidator interface {
	InvalidateEvent(ctx context.Context, eventID string)
}

// ticketService implements TicketService
type ticketService struct {
	ticketRepo repository.TicketRepository
	eventRepo  repository.EventRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(
	ticketRepo repository.TicketRepository,
	eventRepo repository.EventRepository,
) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
	}
}

// CreateTicket puts a ticket tier on sale. Only the event's owner or an
// admin may add tiers.
func (s *ticketService) CreateTicket(ctx context.Context, identity domain.Identity, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if req == nil || req.EventID == "" {
		return nil, domain.ErrEventNotFound
	}

	if err := s.authorizeTicketWrite(ctx, identity, req.EventID); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	ticket, err := domain.NewTicket(uuid.New().String(), req.EventID, req.Type, price, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.invalidateEventCache(ctx, req.EventID)

	return dto.TicketFromDomain(ticket), nil
}

// GetTicket retrieves a single ticket tier
func (s *ticketService) GetTicket(ctx context.Context, ticketID string) (*dto.TicketResponse, error) {
	if ticketID == "" {
		return nil, domain.ErrInvalidTicketID
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	return dto.TicketFromDomain(ticket), nil
}

// UpdateTicket updates a ticket tier. Capacity edits set the remaining
// quantity directly; they do not touch existing bookings.
func (s *ticketService) UpdateTicket(ctx context.Context, identity domain.Identity, ticketID string, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if ticketID == "" {
		return nil, domain.ErrInvalidTicketID
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeTicketWrite(ctx, identity, ticket.EventID); err != nil {
		return nil, err
	}
	if req == nil {
		return dto.TicketFromDomain(ticket), nil
	}

	if req.Type != nil {
		if *req.Type == "" {
			return nil, domain.ErrInvalidTicketType
		}
		ticket.Type = *req.Type
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, domain.ErrInvalidPrice
		}
		ticket.Price = price
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		ticket.Quantity = *req.Quantity
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.invalidateEventCache(ctx, ticket.EventID)

	return dto.TicketFromDomain(ticket), nil
}

// DeleteTicket takes a ticket tier off sale
func (s *ticketService) DeleteTicket(ctx context.Context, identity domain.Identity, ticketID string) error {
	if ticketID == "" {
		return domain.ErrInvalidTicketID
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}

	if err := s.authorizeTicketWrite(ctx, identity, ticket.EventID); err != nil {
		return err
	}

	if err := s.ticketRepo.Delete(ctx, ticketID); err != nil {
		return err
	}

	s.invalidateEventCache(ctx, ticket.EventID)

	return nil
}

func (s *ticketService) authorizeTicketWrite(ctx context.Context, identity domain.Identity, eventID string) error {
	if !identity.CanManageEvents() {
		return domain.ErrUnauthorized
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if !event.IsOwnedBy(identity.UserID) && !identity.IsAdmin() {
		return domain.ErrUnauthorized
	}

	return nil
}

func (s *ticketService) invalidateEventCache(ctx context.Context, eventID string) {
	if inv, ok := s.eventRepo.(eventCacheInvalidator); ok {
		inv.InvalidateEvent(ctx, eventID)
	}
}

// Ensure ticketService implements TicketService
var _ TicketService = (*ticketService)(nil)
