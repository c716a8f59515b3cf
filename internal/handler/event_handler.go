package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/service"
)

// EventHandler handles event catalog HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := h.eventService.CreateEvent(c.Request.Context(), identity, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetEvent handles GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	result, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	var req dto.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid query",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := h.eventService.ListEvents(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateEvent handles PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := h.eventService.UpdateEvent(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteEvent handles DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), identity, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "event deleted",
	})
}

// GetEventTickets handles GET /events/:id/tickets
func (h *EventHandler) GetEventTickets(c *gin.Context) {
	result, err := h.eventService.GetEventTickets(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": result})
}
