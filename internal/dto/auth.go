package dto

import (
	"net/mail"
	"strings"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate checks identity fields and password strength
func (r *RegisterRequest) Validate() error {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(r.Username) == "" {
		fe.Add("username", "username is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		fe.Add("email", "email must be a valid address")
	}
	if len(r.Password) < 8 {
		fe.Add("password", "password must be at least 8 characters")
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the mutable profile fields; empty values
// leave the stored field unchanged
type UpdateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// Validate checks the provided fields only
func (r *UpdateProfileRequest) Validate() error {
	fe := domain.FieldErrors{}
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			fe.Add("email", "email must be a valid address")
		}
	}
	if r.Password != "" && len(r.Password) < 8 {
		fe.Add("password", "password must be at least 8 characters")
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// UserResponse is the read schema for users
type UserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	Image     *string `json:"image"`
}

// AuthResponse carries the issued token alongside the user record
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
