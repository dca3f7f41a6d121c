package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// ShowHandler handles astronomy show HTTP requests
type ShowHandler struct {
	showService service.ShowService
	maxUpload   int64
}

// NewShowHandler creates a new show handler
func NewShowHandler(showService service.ShowService, maxUpload int64) *ShowHandler {
	return &ShowHandler{showService: showService, maxUpload: maxUpload}
}

// Create handles POST /astronomy_show/
func (h *ShowHandler) Create(c *gin.Context) {
	var req dto.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	show, err := h.showService.CreateShow(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewShowListItem(show))
}

// List handles GET /astronomy_show/
func (h *ShowHandler) List(c *gin.Context) {
	var filter dto.ShowListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	shows, err := h.showService.ListShows(c.Request.Context(), &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewShowListItems(shows))
}

// Get handles GET /astronomy_show/:id/
func (h *ShowHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	show, err := h.showService.GetShow(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewShowListItem(show))
}

// Update handles PUT and PATCH /astronomy_show/:id/
func (h *ShowHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	show, err := h.showService.UpdateShow(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewShowListItem(show))
}

// Delete handles DELETE /astronomy_show/:id/
func (h *ShowHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.showService.DeleteShow(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /astronomy_show/:id/upload-image/
func (h *ShowHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	fileHeader, ok := imageUpload(c, h.maxUpload)
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()

	if _, err := h.showService.UploadImage(c.Request.Context(), id, fileHeader.Filename, file); err != nil {
		handleServiceError(c, err)
		return
	}

	show, err := h.showService.GetShow(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewShowListItem(show))
}
