package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// SessionHandler handles show session HTTP requests
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /show_session/
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewSessionResponse(session))
}

// List handles GET /show_session/
func (h *SessionHandler) List(c *gin.Context) {
	var filter dto.SessionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewSessionListItems(sessions))
}

// Get handles GET /show_session/:id/
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewSessionResponse(session))
}

// Update handles PUT and PATCH /show_session/:id/
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.UpdateSession(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewSessionResponse(session))
}

// Delete handles DELETE /show_session/:id/
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
