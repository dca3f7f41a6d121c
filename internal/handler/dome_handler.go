package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// DomeHandler handles planetarium dome HTTP requests
type DomeHandler struct {
	domeService service.DomeService
	maxUpload   int64
}

// NewDomeHandler creates a new dome handler
func NewDomeHandler(domeService service.DomeService, maxUpload int64) *DomeHandler {
	return &DomeHandler{domeService: domeService, maxUpload: maxUpload}
}

// Create handles POST /planetarium_dome/
func (h *DomeHandler) Create(c *gin.Context) {
	var req dto.CreateDomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dome, err := h.domeService.CreateDome(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewDomeListItem(dome))
}

// List handles GET /planetarium_dome/
func (h *DomeHandler) List(c *gin.Context) {
	var filter dto.DomeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	domes, err := h.domeService.ListDomes(c.Request.Context(), &filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewDomeListItems(domes))
}

// Get handles GET /planetarium_dome/:id/
func (h *DomeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	dome, err := h.domeService.GetDome(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewDomeListItem(dome))
}

// Update handles PUT and PATCH /planetarium_dome/:id/
func (h *DomeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateDomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dome, err := h.domeService.UpdateDome(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewDomeListItem(dome))
}

// Delete handles DELETE /planetarium_dome/:id/
func (h *DomeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.domeService.DeleteDome(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /planetarium_dome/:id/upload-image/
func (h *DomeHandler) UploadImage(c *gin.Context) {
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

	if _, err := h.domeService.UploadImage(c.Request.Context(), id, fileHeader.Filename, file); err != nil {
		handleServiceError(c, err)
		return
	}

	dome, err := h.domeService.GetDome(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewDomeListItem(dome))
}
