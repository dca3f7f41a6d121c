package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// imageFormField is the multipart field carrying uploaded images
const imageFormField = "image"

// parseIDParam parses the :id path parameter; on failure it writes a 404
// and returns false
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, "Record not found")
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors onto the API error surface:
// field-level validation failures become 400, missing records 404,
// anything else 500
func handleServiceError(c *gin.Context, err error) {
	if fields, ok := domain.AsFieldErrors(err); ok {
		response.ValidationFailed(c, fields)
		return
	}
	if domain.IsNotFoundError(err) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, err)
}

// imageUpload extracts the uploaded image from the request, enforcing the
// size limit; on failure it writes the error response and returns false
func imageUpload(c *gin.Context, maxBytes int64) (*multipart.FileHeader, bool) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		fe := domain.FieldErrors{}
		fe.Add(imageFormField, "image file is required")
		response.ValidationFailed(c, fe)
		return nil, false
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		fe := domain.FieldErrors{}
		fe.Add(imageFormField, "image is too large")
		response.ValidationFailed(c, fe)
		return nil, false
	}
	return fileHeader, true
}
