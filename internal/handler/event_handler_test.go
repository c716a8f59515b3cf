package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viren1298/event-booking-system/internal/domain"
	"github.com/viren1298/event-booking-system/internal/dto"
)

// MockEventService is a mock implementation of EventService for testing
type MockEventService struct {
	CreateEventFunc     func(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEventFunc        func(ctx context.Context, eventID string) (*dto.EventResponse, error)
	ListEventsFunc      func(ctx context.Context, req *dto.ListEventsRequest) (*dto.EventListResponse, error)
	UpdateEventFunc     func(ctx context.Context, identity domain.Identity, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEventFunc     func(ctx context.Context, identity domain.Identity, eventID string) error
	GetEventTicketsFunc func(ctx context.Context, eventID string) ([]*dto.TicketResponse, error)
}

func (m *MockEventService) CreateEvent(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, identity, req)
	}
	return nil, nil
}

func (m *MockEventService) GetEvent(ctx context.Context, eventID string) (*dto.EventResponse, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *MockEventService) ListEvents(ctx context.Context, req *dto.ListEventsRequest) (*dto.EventListResponse, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockEventService) UpdateEvent(ctx context.Context, identity domain.Identity, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, identity, eventID, req)
	}
	return nil, nil
}

func (m *MockEventService) DeleteEvent(ctx context.Context, identity domain.Identity, eventID string) error {
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(ctx, identity, eventID)
	}
	return nil
}

func (m *MockEventService) GetEventTickets(ctx context.Context, eventID string) ([]*dto.TicketResponse, error) {
	if m.GetEventTicketsFunc != nil {
		return m.GetEventTicketsFunc(ctx, eventID)
	}
	return nil, nil
}

func setupEventRouter(handler *EventHandler, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if userID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Set("user_role", role)
			c.Next()
		})
	}

	events := router.Group("/events")
	{
		events.GET("", handler.ListEvents)
		events.GET("/:id", handler.GetEvent)
		events.GET("/:id/tickets", handler.GetEventTickets)
		events.POST("", handler.CreateEvent)
		events.PUT("/:id", handler.UpdateEvent)
		events.DELETE("/:id", handler.DeleteEvent)
	}

	return router
}

func TestEventHandler_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		role           string
		request        *dto.CreateEventRequest
		mockFunc       func(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "successful creation",
			userID: "org-001",
			role:   "organizer",
			request: &dto.CreateEventRequest{
				Title:    "Summer Fest",
				Location: "Main Arena",
				Date:     time.Now().Add(30 * 24 * time.Hour),
			},
			mockFunc: func(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
				return &dto.EventResponse{
					ID:        "event-001",
					Title:     req.Title,
					Location:  req.Location,
					Date:      req.Date,
					CreatedBy: identity.UserID,
				}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "customer role forbidden",
			userID: "user-001",
			role:   "customer",
			request: &dto.CreateEventRequest{
				Title:    "Summer Fest",
				Location: "Main Arena",
				Date:     time.Now().Add(30 * 24 * time.Hour),
			},
			mockFunc: func(ctx context.Context, identity domain.Identity, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
				return nil, domain.ErrUnauthorized
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "FORBIDDEN",
		},
		{
			name:           "unauthorized - no user_id",
			userID:         "",
			request:        &dto.CreateEventRequest{Title: "Summer Fest"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockEventService{
				CreateEventFunc: tt.mockFunc,
			}
			handler := NewEventHandler(mockService)
			router := setupEventRouter(handler, tt.userID, tt.role)

			body, _ := json.Marshal(tt.request)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedCode != "" {
				var response dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &response); err == nil {
					if response.Code != tt.expectedCode {
						t.Errorf("expected code %s, got %s", tt.expectedCode, response.Code)
					}
				}
			}
		})
	}
}

func TestEventHandler_CreateEvent_MissingTitle(t *testing.T) {
	handler := NewEventHandler(&MockEventService{})
	router := setupEventRouter(handler, "org-001", "organizer")

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"location": "Main Arena"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var response dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse error response: %v", err)
	}
	if response.Code != "INVALID_REQUEST" {
		t.Errorf("expected code INVALID_REQUEST, got %s", response.Code)
	}
}

func TestEventHandler_UpdateEvent_NotOwner(t *testing.T) {
	mockService := &MockEventService{
		UpdateEventFunc: func(ctx context.Context, identity domain.Identity, eventID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	handler := NewEventHandler(mockService)
	router := setupEventRouter(handler, "org-002", "organizer")

	req := httptest.NewRequest(http.MethodPut, "/events/event-001", bytes.NewBufferString(`{"title": "New Title"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(ctx context.Context, identity domain.Identity, eventID string) error
		expectedStatus int
	}{
		{
			name:           "deleted",
			mockFunc:       func(ctx context.Context, identity domain.Identity, eventID string) error { return nil },
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			mockFunc: func(ctx context.Context, identity domain.Identity, eventID string) error {
				return domain.ErrEventNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "not owner",
			mockFunc: func(ctx context.Context, identity domain.Identity, eventID string) error {
				return domain.ErrUnauthorized
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockEventService{
				DeleteEventFunc: tt.mockFunc,
			}
			handler := NewEventHandler(mockService)
			router := setupEventRouter(handler, "org-001", "organizer")

			req := httptest.NewRequest(http.MethodDelete, "/events/event-001", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestEventHandler_ListEvents_Public(t *testing.T) {
	var gotReq *dto.ListEventsRequest
	mockService := &MockEventService{
		ListEventsFunc: func(ctx context.Context, req *dto.ListEventsRequest) (*dto.EventListResponse, error) {
			gotReq = req
			return &dto.EventListResponse{
				Events: []*dto.EventResponse{{ID: "event-001", Title: "Summer Fest"}},
				Total:  1,
				Limit:  req.Limit,
				Offset: req.Offset,
			}, nil
		},
	}
	handler := NewEventHandler(mockService)

	// No identity middleware: listing is public
	router := setupEventRouter(handler, "", "")

	req := httptest.NewRequest(http.MethodGet, "/events?search=fest&limit=5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotReq == nil || gotReq.Search != "fest" || gotReq.Limit != 5 {
		t.Errorf("expected search=fest limit=5, got %+v", gotReq)
	}

	var response dto.EventListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Total != 1 {
		t.Errorf("expected total 1, got %d", response.Total)
	}
}

func TestEventHandler_GetEvent_NotFound(t *testing.T) {
	mockService := &MockEventService{
		GetEventFunc: func(ctx context.Context, eventID string) (*dto.EventResponse, error) {
			return nil, domain.ErrEventNotFound
		},
	}
	handler := NewEventHandler(mockService)
	router := setupEventRouter(handler, "", "")

	req := httptest.NewRequest(http.MethodGet, "/events/non-existent", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
