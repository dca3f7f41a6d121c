package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// ThemeHandler handles show theme HTTP requests
type ThemeHandler struct {
	themeService service.ThemeService
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeService service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// Create handles POST /show_theme/
func (h *ThemeHandler) Create(c *gin.Context) {
	var req dto.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	theme, err := h.themeService.CreateTheme(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewThemeResponse(theme))
}

// List handles GET /show_theme/
func (h *ThemeHandler) List(c *gin.Context) {
	var filter dto.ThemeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	themes, err := h.themeService.ListThemes(c.Request.Context(), &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewThemeResponses(themes))
}

// Get handles GET /show_theme/:id/
func (h *ThemeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	theme, err := h.themeService.GetTheme(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewThemeResponse(theme))
}

// Update handles PUT and PATCH /show_theme/:id/
func (h *ThemeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	theme, err := h.themeService.UpdateTheme(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewThemeResponse(theme))
}

// Delete handles DELETE /show_theme/:id/
func (h *ThemeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.themeService.DeleteTheme(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
