package domain

import (
	"strings"
	"time"
)

// Event represents a published event owned by an organizer. The core reads
// event metadata for booking and notification purposes; discovery ranking is
// out of scope.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent creates an event owned by the given organizer
func NewEvent(id, title, description, location string, date time.Time, createdBy string) (*Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}
	if date.IsZero() {
		return nil, ErrInvalidEventDate
	}
	if strings.TrimSpace(createdBy) == "" {
		return nil, ErrInvalidUserID
	}

	now := time.Now().UTC()
	return &Event{
		ID:          id,
		Title:       title,
		Description: description,
		Location:    location,
		Date:        date,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOwnedBy checks if the event was created by the given user
func (e *Event) IsOwnedBy(userID string) bool {
	return e.CreatedBy == userID
}
