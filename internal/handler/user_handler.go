package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/middleware"
	"github.com/tkachuk2291/planetarium-api-service/internal/service"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// UserHandler handles registration, login and profile HTTP requests
type UserHandler struct {
	authService service.AuthService
	maxUpload   int64
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService service.AuthService, maxUpload int64) *UserHandler {
	return &UserHandler{authService: authService, maxUpload: maxUpload}
}

// Register handles POST /register/
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, auth)
}

// Login handles POST /login/
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserInactive) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		handleServiceError(c, err)
		return
	}
	response.Success(c, auth)
}

// Me handles GET /me/
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.authService.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

// UpdateMe handles PUT and PATCH /me/
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(user))
}

// UploadImage handles POST /me/upload-image/
func (h *UserHandler) UploadImage(c *gin.Context) {
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

	userID := middleware.CurrentUserID(c)
	if _, err := h.authService.UploadImage(c.Request.Context(), userID, fileHeader.Filename, file); err != nil {
		handleServiceError(c, err)
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, dto.NewUserResponse(user))
}
