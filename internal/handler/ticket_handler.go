package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/middleware"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// TicketHandler handles ticket HTTP requests. Every route is scoped to the
// authenticated caller's own tickets.
type TicketHandler struct {
	bookingService service.BookingService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(bookingService service.BookingService) *TicketHandler {
	return &TicketHandler{bookingService: bookingService}
}

// Create handles POST /tickets/
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.bookingService.CreateTicket(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewTicketCreateResponse(ticket))
}

// List handles GET /tickets/
func (h *TicketHandler) List(c *gin.Context) {
	var filter dto.TicketListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	tickets, err := h.bookingService.ListTickets(c.Request.Context(), middleware.CurrentUserID(c), &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewTicketListItems(tickets))
}

// Get handles GET /tickets/:id/
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ticket, err := h.bookingService.GetTicket(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewTicketDetailResponse(ticket))
}
