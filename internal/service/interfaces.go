package service

import (
	"context"
	"io"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
)

// ThemeService manages show themes
type ThemeService interface {
	// CreateTheme creates a new show theme
	CreateTheme(ctx context.Context, req *dto.CreateThemeRequest) (*domain.ShowTheme, error)
	// GetTheme retrieves a theme by ID
	GetTheme(ctx context.Context, id int64) (*domain.ShowTheme, error)
	// ListThemes lists themes matching the filter
	ListThemes(ctx context.Context, filter *dto.ThemeListFilter) ([]*domain.ShowTheme, error)
	// UpdateTheme renames a theme
	UpdateTheme(ctx context.Context, id int64, req *dto.CreateThemeRequest) (*domain.ShowTheme, error)
	// DeleteTheme removes a theme
	DeleteTheme(ctx context.Context, id int64) error
}

// ShowService manages the astronomy show catalog
type ShowService interface {
	// CreateShow creates a new show with its theme links
	CreateShow(ctx context.Context, req *dto.CreateShowRequest) (*domain.AstronomyShow, error)
	// GetShow retrieves a show by ID
	GetShow(ctx context.Context, id int64) (*domain.AstronomyShow, error)
	// ListShows lists shows matching the filter
	ListShows(ctx context.Context, filter *dto.ShowListFilter) ([]*domain.AstronomyShow, error)
	// UpdateShow replaces the fields and theme links of a show
	UpdateShow(ctx context.Context, id int64, req *dto.CreateShowRequest) (*domain.AstronomyShow, error)
	// DeleteShow removes a show
	DeleteShow(ctx context.Context, id int64) error
	// UploadImage stores an image for the show and records its path
	UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (string, error)
}

// DomeService manages planetarium domes
type DomeService interface {
	// CreateDome creates a new dome
	CreateDome(ctx context.Context, req *dto.CreateDomeRequest) (*domain.PlanetariumDome, error)
	// GetDome retrieves a dome by ID
	GetDome(ctx context.Context, id int64) (*domain.PlanetariumDome, error)
	// ListDomes lists domes matching the filter
	ListDomes(ctx context.Context, filter *dto.DomeListFilter) ([]*domain.PlanetariumDome, error)
	// UpdateDome replaces the name and geometry of a dome
	UpdateDome(ctx context.Context, id int64, req *dto.CreateDomeRequest) (*domain.PlanetariumDome, error)
	// DeleteDome removes a dome
	DeleteDome(ctx context.Context, id int64) error
	// UploadImage stores an image for the dome and records its path
	UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (string, error)
}

// SessionService manages the show schedule
type SessionService interface {
	// CreateSession schedules a show in a dome on a date
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*domain.ShowSession, error)
	// GetSession retrieves a session by ID with its show and dome
	GetSession(ctx context.Context, id int64) (*domain.ShowSession, error)
	// ListSessions lists sessions matching the filter
	ListSessions(ctx context.Context, filter *dto.SessionListFilter) ([]*domain.ShowSession, error)
	// UpdateSession reschedules a session
	UpdateSession(ctx context.Context, id int64, req *dto.CreateSessionRequest) (*domain.ShowSession, error)
	// DeleteSession removes a session
	DeleteSession(ctx context.Context, id int64) error
}

// BookingService manages tickets and their reservations
type BookingService interface {
	// CreateTicket books a seat in a session for the user
	CreateTicket(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error)
	// GetTicket retrieves one of the user's tickets with full context
	GetTicket(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error)
	// ListTickets lists the user's tickets matching the filter
	ListTickets(ctx context.Context, userID int64, filter *dto.TicketListFilter) ([]*domain.Ticket, error)
}

// AuthService manages accounts, credentials and access tokens
type AuthService interface {
	// Register creates an account and issues an access token
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// GetProfile retrieves the account of the authenticated user
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	// UpdateProfile applies the provided profile changes
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*domain.User, error)
	// UploadImage stores an avatar for the user and records its path
	UploadImage(ctx context.Context, userID int64, filename string, file io.Reader) (string, error)
}
