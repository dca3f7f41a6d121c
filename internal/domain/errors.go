package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors
var (
	// Not-found errors
	ErrThemeNotFound   = errors.New("show theme not found")
	ErrShowNotFound    = errors.New("astronomy show not found")
	ErrDomeNotFound    = errors.New("planetarium dome not found")
	ErrSessionNotFound = errors.New("show session not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrUserNotFound    = errors.New("user not found")

	// Uniqueness conflicts
	ErrThemeNameTaken = errors.New("show theme with this name already exists")
	ErrShowTitleTaken = errors.New("astronomy show with this title already exists")
	ErrDomeNameTaken  = errors.New("planetarium dome with this name already exists")
	ErrSeatTaken      = errors.New("this seat is already booked for the session")
	ErrUserExists     = errors.New("user with this username or email already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidToken       = errors.New("invalid token")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrThemeNotFound) ||
		errors.Is(err, ErrShowNotFound) ||
		errors.Is(err, ErrDomeNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrTicketNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrThemeNameTaken) ||
		errors.Is(err, ErrShowTitleTaken) ||
		errors.Is(err, ErrDomeNameTaken) ||
		errors.Is(err, ErrSeatTaken) ||
		errors.Is(err, ErrUserExists)
}

// FieldErrors maps a field name to the messages describing why it is invalid.
// It implements error so services can return it through normal error paths.
type FieldErrors map[string][]string

// Add appends a message for a field
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any field has a message
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsFieldErrors extracts a FieldErrors from an error chain
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ConflictFields wraps a conflict sentinel as field-level errors so the API
// surfaces uniqueness violations the same way as any other validation failure
func ConflictFields(field string, err error) FieldErrors {
	fe := FieldErrors{}
	fe.Add(field, err.Error())
	return fe
}
