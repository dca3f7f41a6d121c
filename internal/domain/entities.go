package domain

import "time"

// Role identifies the authorization level of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ShowTheme is a topic tag attached to astronomy shows
type ShowTheme struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AstronomyShow is a show in the catalog, tagged with zero or more themes
type AstronomyShow struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       *string     `json:"image"`
	Themes      []ShowTheme `json:"themes,omitempty"` // Not a column, loaded via the join table
}

// PlanetariumDome is a physical venue with a fixed row/seat grid
type PlanetariumDome struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Rows       int     `json:"rows"`
	SeatsInRow int     `json:"seats_in_row"`
	Image      *string `json:"image"`
}

// ShowSession is a scheduled screening of a show in a specific dome
type ShowSession struct {
	ID                int64     `json:"id"`
	AstronomyShowID   int64     `json:"astronomy_show_id"`
	PlanetariumDomeID int64     `json:"planetarium_dome_id"`
	ShowTime          time.Time `json:"show_time"`

	// Related records, populated by list/detail queries
	Show *AstronomyShow   `json:"show,omitempty"`
	Dome *PlanetariumDome `json:"dome,omitempty"`
}

// Reservation is the ownership envelope grouping tickets under a user
type Reservation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket is a single seat assignment within a show session
type Ticket struct {
	ID            int64 `json:"id"`
	Row           int   `json:"row"`
	Seat          int   `json:"seat"`
	ShowSessionID int64 `json:"show_session_id"`
	ReservationID int64 `json:"reservation_id"`

	// Joined context, filled by list/detail queries rather than the tickets table
	OwnerID       int64     `json:"owner_id,omitempty"`
	ShowTitle     string    `json:"show_title,omitempty"`
	DomeName      string    `json:"dome_name,omitempty"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	ShowTime      time.Time `json:"show_time,omitempty"`
	ThemeNames    []string  `json:"theme_names,omitempty"`
	ReservedAt    time.Time `json:"reserved_at,omitempty"`
}

// User is an account able to authenticate and own reservations
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims carries the authenticated identity extracted from an access token
type Claims struct {
	UserID   int64
	Username string
	Role     Role
}

// IsAdmin reports whether the claims belong to an administrator
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
