package dto

import (
	"time"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

// ShowTimeLayout is the wire format of session dates
const ShowTimeLayout = "2006-01-02"

// ParseShowTime parses a session date from its wire format
func ParseShowTime(value string) (time.Time, error) {
	return time.Parse(ShowTimeLayout, value)
}

// CreateTicketRequest exposes only the writable fields of a ticket;
// the reservation is created server-side for the calling user
type CreateTicketRequest struct {
	Row         int   `json:"row"`
	Seat        int   `json:"seat"`
	ShowSession int64 `json:"show_session" binding:"required"`
}

// Validate checks the statically known constraints; seat bounds against the
// dome geometry are validated by the booking service once the session is
// resolved
func (r *CreateTicketRequest) Validate() error {
	fe := domain.FieldErrors{}
	if r.Row < 1 {
		fe.Add("row", "row must be a positive number")
	}
	if r.Seat < 1 {
		fe.Add("seat", "seat must be a positive number")
	}
	if r.ShowSession <= 0 {
		fe.Add("show_session", "show_session is required")
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// TicketListItem flattens session, reservation and dome to display strings
type TicketListItem struct {
	ID              int64  `json:"id"`
	Row             int    `json:"row"`
	Seat            int    `json:"seat"`
	ShowSession     string `json:"show_session"`     // show title
	Reservation     string `json:"reservation"`      // owning username
	PlanetariumDome string `json:"planetarium_dome"` // dome name
}

// TicketSessionContext nests the session context of a ticket detail
type TicketSessionContext struct {
	ShowTime        string            `json:"show_time"`
	PlanetariumDome TicketDomeContext `json:"planetarium_dome"`
	AstronomyShow   TicketShowContext `json:"astronomy_show"`
}

// TicketDomeContext is the dome summary inside a ticket detail
type TicketDomeContext struct {
	PlanetariumName string `json:"planetarium_name"`
}

// TicketShowContext is the show summary inside a ticket detail
type TicketShowContext struct {
	ShowName  string   `json:"show_name"`
	ShowTheme []string `json:"show_theme"`
}

// TicketReservationContext is the reservation summary inside a ticket detail
type TicketReservationContext struct {
	CreatedAt string `json:"created_at"`
	Visitor   string `json:"visitor"`
}

// TicketDetailResponse nests full session and reservation context
type TicketDetailResponse struct {
	ID          int64                    `json:"id"`
	Row         int                      `json:"row"`
	Seat        int                      `json:"seat"`
	ShowSession TicketSessionContext     `json:"show_session"`
	Reservation TicketReservationContext `json:"reservation"`
}

// TicketCreateResponse echoes the writable fields of the created ticket
type TicketCreateResponse struct {
	ID          int64 `json:"id"`
	Row         int   `json:"row"`
	Seat        int   `json:"seat"`
	ShowSession int64 `json:"show_session"`
}

// TicketListFilter holds query-string filters for the ticket listing;
// all are case-insensitive substrings, applied before the ownership scope
type TicketListFilter struct {
	ShowSession     string `form:"show_session"`
	Reservation     string `form:"reservation"`
	PlanetariumDome string `form:"planetarium_dome"`
}
