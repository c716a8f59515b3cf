package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viren1298/event-booking-system/internal/dto"
	"github.com/viren1298/event-booking-system/internal/service"
)

// TicketHandler handles ticket catalog HTTP requests
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := h.ticketService.CreateTicket(c.Request.Context(), identity, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.ticketService.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid request",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := h.ticketService.UpdateTicket(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), identity, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "ticket deleted",
	})
}
