package dto

import (
	"time"

	"github.com/viren1298/event-booking-system/internal/domain"
)

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

// UpdateEventRequest represents a request to update an event.
// Nil fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// ListEventsRequest represents query parameters for listing events
type ListEventsRequest struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventListResponse represents a page of events
type EventListResponse struct {
	Events []*EventResponse `json:"events"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// EventFromDomain converts a domain Event to EventResponse
func EventFromDomain(e *domain.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
