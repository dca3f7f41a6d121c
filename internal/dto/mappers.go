package dto

import (
	"time"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

// NewThemeResponse maps a theme to its read schema
func NewThemeResponse(theme *domain.ShowTheme) ThemeResponse {
	return ThemeResponse{ID: theme.ID, Name: theme.Name}
}

// NewThemeResponses maps a theme list to its read schema
func NewThemeResponses(themes []*domain.ShowTheme) []ThemeResponse {
	out := make([]ThemeResponse, 0, len(themes))
	for _, theme := range themes {
		out = append(out, NewThemeResponse(theme))
	}
	return out
}

// NewShowListItem maps a show to its read schema
func NewShowListItem(show *domain.AstronomyShow) ShowListItem {
	themes := make([]ThemeResponse, 0, len(show.Themes))
	for _, theme := range show.Themes {
		themes = append(themes, ThemeResponse{ID: theme.ID, Name: theme.Name})
	}
	return ShowListItem{
		ID:          show.ID,
		ShowName:    show.Title,
		Description: show.Description,
		ShowTheme:   themes,
		Image:       show.Image,
	}
}

// NewShowListItems maps a show list to its read schema
func NewShowListItems(shows []*domain.AstronomyShow) []ShowListItem {
	out := make([]ShowListItem, 0, len(shows))
	for _, show := range shows {
		out = append(out, NewShowListItem(show))
	}
	return out
}

// NewDomeListItem maps a dome to its read schema
func NewDomeListItem(dome *domain.PlanetariumDome) DomeListItem {
	return DomeListItem{
		ID:              dome.ID,
		PlanetariumName: dome.Name,
		Rows:            dome.Rows,
		SeatsInRow:      dome.SeatsInRow,
		Image:           dome.Image,
	}
}

// NewDomeListItems maps a dome list to its read schema
func NewDomeListItems(domes []*domain.PlanetariumDome) []DomeListItem {
	out := make([]DomeListItem, 0, len(domes))
	for _, dome := range domes {
		out = append(out, NewDomeListItem(dome))
	}
	return out
}

// NewSessionResponse maps a session to its flat schema
func NewSessionResponse(session *domain.ShowSession) SessionResponse {
	return SessionResponse{
		ID:              session.ID,
		AstronomyShow:   session.AstronomyShowID,
		PlanetariumDome: session.PlanetariumDomeID,
		ShowTime:        session.ShowTime.Format(ShowTimeLayout),
	}
}

// NewSessionListItem maps a session to its nested schema; Show and Dome
// must be loaded
func NewSessionListItem(session *domain.ShowSession) SessionListItem {
	return SessionListItem{
		ID:              session.ID,
		AstronomyShow:   NewShowListItem(session.Show),
		PlanetariumDome: NewDomeListItem(session.Dome),
		ShowTime:        session.ShowTime.Format(ShowTimeLayout),
	}
}

// NewSessionListItems maps a session list to its nested schema
func NewSessionListItems(sessions []*domain.ShowSession) []SessionListItem {
	out := make([]SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, NewSessionListItem(session))
	}
	return out
}

// NewTicketListItem maps a ticket to its flattened list schema
func NewTicketListItem(ticket *domain.Ticket) TicketListItem {
	return TicketListItem{
		ID:              ticket.ID,
		Row:             ticket.Row,
		Seat:            ticket.Seat,
		ShowSession:     ticket.ShowTitle,
		Reservation:     ticket.OwnerUsername,
		PlanetariumDome: ticket.DomeName,
	}
}

// NewTicketListItems maps a ticket list to its flattened schema
func NewTicketListItems(tickets []*domain.Ticket) []TicketListItem {
	out := make([]TicketListItem, 0, len(tickets))
	for _, ticket := range tickets {
		out = append(out, NewTicketListItem(ticket))
	}
	return out
}

// NewTicketDetailResponse maps a ticket with full joined context to its
// nested detail schema
func NewTicketDetailResponse(ticket *domain.Ticket) TicketDetailResponse {
	themes := ticket.ThemeNames
	if themes == nil {
		themes = []string{}
	}
	return TicketDetailResponse{
		ID:   ticket.ID,
		Row:  ticket.Row,
		Seat: ticket.Seat,
		ShowSession: TicketSessionContext{
			ShowTime: ticket.ShowTime.Format(ShowTimeLayout),
			PlanetariumDome: TicketDomeContext{
				PlanetariumName: ticket.DomeName,
			},
			AstronomyShow: TicketShowContext{
				ShowName:  ticket.ShowTitle,
				ShowTheme: themes,
			},
		},
		Reservation: TicketReservationContext{
			CreatedAt: ticket.ReservedAt.Format(time.RFC3339),
			Visitor:   ticket.OwnerUsername,
		},
	}
}

// NewTicketCreateResponse maps a freshly booked ticket to its echo schema
func NewTicketCreateResponse(ticket *domain.Ticket) TicketCreateResponse {
	return TicketCreateResponse{
		ID:          ticket.ID,
		Row:         ticket.Row,
		Seat:        ticket.Seat,
		ShowSession: ticket.ShowSessionID,
	}
}

// NewUserResponse maps a user to its read schema
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Image:     user.Image,
	}
}
