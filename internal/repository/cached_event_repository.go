package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/redis"
)

const (
	// Cache key prefixes
	eventDetailKeyPrefix  = "event:detail:"
	eventTicketsKeyPrefix = "event:tickets:"
	eventListKeyPrefix    = "event:list:"

	// Default TTL for event caches
	eventCacheTTL = 5 * time.Minute
)

// CachedEventRepository wraps EventRepository with Redis caching
type CachedEventRepository struct {
	repo  EventRepository
	cache *redis.Client
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(repo EventRepository, cache *redis.Client) *CachedEventRepository {
	return &CachedEventRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new event and invalidates list caches
func (r *CachedEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := r.repo.Create(ctx, event); err != nil {
		return err
	}
	r.invalidateListCaches(ctx)
	return nil
}

// GetByID retrieves an event by ID with caching
func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	cacheKey := eventDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var event domain.Event
		if err := json.Unmarshal([]byte(cached), &event); err == nil {
			return &event, nil
		}
	}

	event, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cacheJSON(ctx, cacheKey, event)

	return event, nil
}

// List lists events with filters and pagination. Only unfiltered pages are
// cached; filtered queries hit the database directly.
func (r *CachedEventRepository) List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	if !filter.IsEmpty() {
		return r.repo.List(ctx, filter, limit, offset)
	}

	cacheKey := fmt.Sprintf("%sall:%d:%d", eventListKeyPrefix, limit, offset)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var result cachedEventList
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result.Events, result.Total, nil
		}
	}

	events, total, err := r.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	r.cacheJSON(ctx, cacheKey, cachedEventList{Events: events, Total: total})

	return events, total, nil
}

// Update updates an event and invalidates its caches
func (r *CachedEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := r.repo.Update(ctx, event); err != nil {
		return err
	}

	r.InvalidateEvent(ctx, event.ID)

	return nil
}

// Delete deletes an event and invalidates its caches
func (r *CachedEventRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	r.InvalidateEvent(ctx, id)

	return nil
}

// GetTickets returns the ticket tiers for an event with caching
func (r *CachedEventRepository) GetTickets(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	cacheKey := eventTicketsKeyPrefix + eventID
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var tickets []*domain.Ticket
		if err := json.Unmarshal([]byte(cached), &tickets); err == nil {
			return tickets, nil
		}
	}

	tickets, err := r.repo.GetTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	r.cacheJSON(ctx, cacheKey, tickets)

	return tickets, nil
}

// InvalidateEvent drops the detail and ticket caches for an event along
// with all list caches. Ticket writes call this so stale availability is
// never served from cache.
func (r *CachedEventRepository) InvalidateEvent(ctx context.Context, eventID string) {
	r.cache.Del(ctx, eventDetailKeyPrefix+eventID, eventTicketsKeyPrefix+eventID)
	r.invalidateListCaches(ctx)
}

// --- Helper functions ---

type cachedEventList struct {
	Events []*domain.Event `json:"events"`
	Total  int             `json:"total"`
}

func (r *CachedEventRepository) cacheJSON(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, string(data), eventCacheTTL)
}

func (r *CachedEventRepository) invalidateListCaches(ctx context.Context) {
	// KEYS is unsafe under load, so list caches are swept with SCAN.
	iter := r.cache.Client().Scan(ctx, 0, eventListKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		r.cache.Del(ctx, iter.Val())
	}
}

// Ensure CachedEventRepository implements EventRepository
var _ EventRepository = (*CachedEventRepository)(nil)
