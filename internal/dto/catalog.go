package dto

import (
	"strings"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

// ---- Show themes ----

// CreateThemeRequest is the write schema for show themes
type CreateThemeRequest struct {
	Name string `json:"name" binding:"required"`
}

// Validate checks required fields
func (r *CreateThemeRequest) Validate() error {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		fe.Add("name", "name is required")
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// ThemeResponse is the read schema for show themes
type ThemeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ThemeListFilter holds query-string filters for the theme listing
type ThemeListFilter struct {
	Name string `form:"name"`
}

// ---- Astronomy shows ----

// CreateShowRequest is the write schema for astronomy shows; themes are
// referenced by id only
type CreateShowRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ShowTheme   []int64 `json:"show_theme"`
}

func (r *CreateShowRequest) Validate() error {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(r.Title) == "" {
		fe.Add("title", "title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		fe.Add("description", "description is required")
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// ShowListItem is the list/detail schema: full theme objects plus image ref
type ShowListItem struct {
	ID          int64           `json:"id"`
	ShowName    string          `json:"show_name"`
	Description string          `json:"description"`
	ShowTheme   []ThemeResponse `json:"show_theme"`
	Image       *string         `json:"image"`
}

// ShowListFilter holds query-string filters for the show listing
type ShowListFilter struct {
	ShowTheme   string `form:"show_theme"`
	ShowName    string `form:"show_name"`
	Description string `form:"description"`
}

// ---- Planetarium domes ----

// CreateDomeRequest is the write schema for domes
type CreateDomeRequest struct {
	Name       string `json:"name" binding:"required"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
}

func (r *CreateDomeRequest) Validate() error {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		fe.Add("name", "name is required")
	}
	if err := domain.ValidateDomeGeometry(r.Rows, r.SeatsInRow); err != nil {
		if geometry, ok := domain.AsFieldErrors(err); ok {
			for field, messages := range geometry {
				fe[field] = append(fe[field], messages...)
			}
		}
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// DomeListItem aliases name as planetarium_name, matching the read surface
type DomeListItem struct {
	ID              int64   `json:"id"`
	PlanetariumName string  `json:"planetarium_name"`
	Rows            int     `json:"rows"`
	SeatsInRow      int     `json:"seats_in_row"`
	Image           *string `json:"image"`
}

// DomeListFilter holds query-string filters for the dome listing;
// rows and seats_in_row are exact matches, name is a substring
type DomeListFilter struct {
	PlanetariumName string `form:"planetarium_name"`
	Rows            *int   `form:"rows"`
	SeatsInRow      *int   `form:"seats_in_row"`
}

// ---- Show sessions ----

// CreateSessionRequest is the flat write schema: ids plus a date
type CreateSessionRequest struct {
	AstronomyShow   int64  `json:"astronomy_show" binding:"required"`
	PlanetariumDome int64  `json:"planetarium_dome" binding:"required"`
	ShowTime        string `json:"show_time" binding:"required"` // YYYY-MM-DD
}

func (r *CreateSessionRequest) Validate() error {
	fe := domain.FieldErrors{}
	if r.AstronomyShow <= 0 {
		fe.Add("astronomy_show", "astronomy_show is required")
	}
	if r.PlanetariumDome <= 0 {
		fe.Add("planetarium_dome", "planetarium_dome is required")
	}
	if _, err := ParseShowTime(r.ShowTime); err != nil {
		fe.Add("show_time", "show_time must be a date in YYYY-MM-DD format")
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// SessionResponse is the flat detail/create schema
type SessionResponse struct {
	ID              int64  `json:"id"`
	AstronomyShow   int64  `json:"astronomy_show"`
	PlanetariumDome int64  `json:"planetarium_dome"`
	ShowTime        string `json:"show_time"`
}

// SessionListItem nests show and dome summaries
type SessionListItem struct {
	ID              int64        `json:"id"`
	AstronomyShow   ShowListItem `json:"astronomy_show"`
	PlanetariumDome DomeListItem `json:"planetarium_dome"`
	ShowTime        string       `json:"show_time"`
}

// SessionListFilter holds query-string filters for the session listing
type SessionListFilter struct {
	ShowName    string `form:"show_name"`
	Description string `form:"description"`
	Name        string `form:"name"`
	ShowTime    string `form:"show_time"`
}
