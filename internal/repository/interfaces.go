package repository

import (
	"context"
	"time"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

// ThemeRepository defines the interface for show theme data access
type ThemeRepository interface {
	// Create creates a new show theme
	Create(ctx context.Context, theme *domain.ShowTheme) error
	// GetByID retrieves a theme by ID
	GetByID(ctx context.Context, id int64) (*domain.ShowTheme, error)
	// List lists themes matching the filter
	List(ctx context.Context, filter *ThemeFilter) ([]*domain.ShowTheme, error)
	// GetByIDs retrieves the themes for the given IDs
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.ShowTheme, error)
	// Update persists the name of a theme
	Update(ctx context.Context, theme *domain.ShowTheme) error
	// Delete removes a theme and its show links
	Delete(ctx context.Context, id int64) error
}

// ThemeFilter contains filter options for listing themes
type ThemeFilter struct {
	Name string
}

// ShowRepository defines the interface for astronomy show data access
type ShowRepository interface {
	// Create creates a new show and links its themes
	Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error
	// GetByID retrieves a show by ID with its themes loaded
	GetByID(ctx context.Context, id int64) (*domain.AstronomyShow, error)
	// List lists shows matching the filter, themes loaded
	List(ctx context.Context, filter *ShowFilter) ([]*domain.AstronomyShow, error)
	// Update persists a show and replaces its theme links
	Update(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error
	// Delete removes a show, its theme links and sessions
	Delete(ctx context.Context, id int64) error
	// UpdateImage sets the stored image reference of a show
	UpdateImage(ctx context.Context, id int64, image string) error
}

// ShowFilter contains filter options for listing shows.
// Title, Description and ThemeName match as case-insensitive substrings.
type ShowFilter struct {
	Title       string
	Description string
	ThemeName   string
}

// DomeRepository defines the interface for planetarium dome data access
type DomeRepository interface {
	// Create creates a new dome
	Create(ctx context.Context, dome *domain.PlanetariumDome) error
	// GetByID retrieves a dome by ID
	GetByID(ctx context.Context, id int64) (*domain.PlanetariumDome, error)
	// List lists domes matching the filter
	List(ctx context.Context, filter *DomeFilter) ([]*domain.PlanetariumDome, error)
	// Update persists the name and geometry of a dome
	Update(ctx context.Context, dome *domain.PlanetariumDome) error
	// Delete removes a dome and its sessions
	Delete(ctx context.Context, id int64) error
	// UpdateImage sets the stored image reference of a dome
	UpdateImage(ctx context.Context, id int64, image string) error
}

// DomeFilter contains filter options for listing domes. Name matches as a
// case-insensitive substring; Rows and SeatsInRow are exact when set.
type DomeFilter struct {
	Name       string
	Rows       *int
	SeatsInRow *int
}

// SessionRepository defines the interface for show session data access
type SessionRepository interface {
	// Create creates a new show session
	Create(ctx context.Context, session *domain.ShowSession) error
	// GetByID retrieves a session by ID with its show and dome loaded
	GetByID(ctx context.Context, id int64) (*domain.ShowSession, error)
	// List lists sessions matching the filter, show and dome loaded
	List(ctx context.Context, filter *SessionFilter) ([]*domain.ShowSession, error)
	// Update persists the show, dome and date of a session
	Update(ctx context.Context, session *domain.ShowSession) error
	// Delete removes a session and its tickets
	Delete(ctx context.Context, id int64) error
}

// SessionFilter contains filter options for listing sessions.
// ShowTitle, ShowDescription and DomeName match as case-insensitive
// substrings against the joined show and dome; ShowTime is an exact date.
type SessionFilter struct {
	ShowTitle       string
	ShowDescription string
	DomeName        string
	ShowTime        *time.Time
}

// TicketRepository defines the interface for ticket and reservation data access
type TicketRepository interface {
	// CreateWithReservation creates a reservation for the user and the ticket
	// under it in a single transaction
	CreateWithReservation(ctx context.Context, userID int64, ticket *domain.Ticket) error
	// GetByID retrieves a ticket by ID with its session and reservation context
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	// ListByUser lists the tickets owned by the user, filtered
	ListByUser(ctx context.Context, userID int64, filter *TicketFilter) ([]*domain.Ticket, error)
	// ThemeNames retrieves the theme names of the show behind a ticket
	ThemeNames(ctx context.Context, ticketID int64) ([]string, error)
}

// TicketFilter contains filter options for listing tickets; all fields match
// as case-insensitive substrings against the joined records
type TicketFilter struct {
	ShowTitle     string
	OwnerUsername string
	DomeName      string
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists the mutable fields of a user
	Update(ctx context.Context, user *domain.User) error
	// UpdateImage sets the stored avatar reference of a user
	UpdateImage(ctx context.Context, id int64, image string) error
}
