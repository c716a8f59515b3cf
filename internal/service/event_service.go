package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/repository"
)

// EventService defines the interface for event catalog business logic
type EventService interface {
	// CreateEvent publishes a new event owned by the caller
	CreateEvent(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error)

	// GetEvent retrieves a single event
	GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error)

	// ListEvents lists events matching the filter
	ListEvents(ctx context.Context, req *dto.ListEventsRequest) (*dto.EventListResponse, error)

	// UpdateEvent updates an event owned by the caller
	UpdateEvent(ctx context.Context, identity domain.Identity, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)

	// DeleteEvent removes an event owned by the caller
	DeleteEvent(ctx context.Context, identity domain.Identity, eventID string) error

	// GetEventTickets lists the ticket tiers on sale for an event
	GetEventTickets(ctx context.Context, eventID string) ([]*dto.TicketResponse, error)
}

// eventService implements EventService
type eventService struct {
	eventRepo   repository.EventRepository
	maxPageSize int
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		maxPageSize: 100,
	}
}

// CreateEvent publishes a new event. Organizer or admin role required.
func (s *eventService) CreateEvent(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !identity.CanManageEvents() {
		return nil, domain.ErrUnauthorized
	}
	if req == nil {
		return nil, domain.ErrInvalidTitle
	}

	event, err := domain.NewEvent(uuid.New().String(), req.Title, req.Description, req.Location, req.Date, identity.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return dto.EventFromDomain(event), nil
}

// GetEvent retrieves a single event
func (s *eventService) GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error) {
	if eventID == "" {
		return nil, domain.ErrEventNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return dto.EventFromDomain(event), nil
}

// ListEvents lists events matching the filter, newest event date first
func (s *eventService) ListEvents(ctx context.Context, req *dto.ListEventsRequest) (*dto.EventListResponse, error) {
	limit := 20
	offset := 0
	var filter *repository.EventFilter

	if req != nil {
		if req.Limit > 0 {
			limit = req.Limit
		}
		if req.Offset > 0 {
			offset = req.Offset
		}
		filter = &repository.EventFilter{
			Search:   req.Search,
			Location: req.Location,
			DateFrom: req.DateFrom,
			DateTo:   req.DateTo,
		}
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	events, total, err := s.eventRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, dto.EventFromDomain(e))
	}

	return &dto.EventListResponse{
		Events: responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateEvent updates an event. Only the owner or an admin may edit.
func (s *eventService) UpdateEvent(ctx context.Context, identity domain.Identity, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.authorizeEventWrite(ctx, identity, eventID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return dto.EventFromDomain(event), nil
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, domain.ErrInvalidTitle
		}
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, domain.ErrInvalidEventDate
		}
		event.Date = *req.Date
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return dto.EventFromDomain(event), nil
}

// DeleteEvent removes an event. Only the owner or an admin may delete.
func (s *eventService) DeleteEvent(ctx context.Context, identity domain.Identity, eventID string) error {
	if _, err := s.authorizeEventWrite(ctx, identity, eventID); err != nil {
		return err
	}

	return s.eventRepo.Delete(ctx, eventID)
}

// GetEventTickets lists the ticket tiers on sale for an event
func (s *eventService) GetEventTickets(ctx context.Context, eventID string) ([]*dto.TicketResponse, error) {
	if eventID == "" {
		return nil, domain.ErrEventNotFound
	}

	tickets, err := s.eventRepo.GetTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return dto.TicketsFromDomain(tickets), nil
}

func (s *eventService) authorizeEventWrite(ctx context.Context, identity domain.Identity, eventID string) (*domain.Event, error) {
	if eventID == "" {
		return nil, domain.ErrEventNotFound
	}
	if !identity.CanManageEvents() {
		return nil, domain.ErrUnauthorized
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsOwnedBy(identity.UserID) && !identity.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	return event, nil
}

// Ensure eventService implements EventService
var _ EventService = (*eventService)(nil)
