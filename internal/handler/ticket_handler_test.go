package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/middleware"
	"github.com/tkachuk2291/planetarium-api-service/pkg/response"
)

// MockBookingService is a mock implementation of BookingService for testing
type MockBookingService struct {
	CreateTicketFunc func(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error)
	GetTicketFunc    func(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error)
	ListTicketsFunc  func(ctx context.Context, userID int64, filter *dto.TicketListFilter) ([]*domain.Ticket, error)
}

func (m *MockBookingService) CreateTicket(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error) {
	if m.CreateTicketFunc != nil {
		return m.CreateTicketFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockBookingService) GetTicket(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, userID, ticketID)
	}
	return nil, nil
}

func (m *MockBookingService) ListTickets(ctx context.Context, userID int64, filter *dto.TicketListFilter) ([]*domain.Ticket, error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc(ctx, userID, filter)
	}
	return nil, nil
}

// asUser simulates an authenticated caller
func asUser(userID int64, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.RoleKey, string(role))
		c.Next()
	}
}

func setupTicketRouter(svc *MockBookingService, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTicketHandler(svc)

	authed := router.Group("", asUser(userID, domain.RoleUser))
	authed.POST("/tickets/", h.Create)
	authed.GET("/tickets/", h.List)
	authed.GET("/tickets/:id/", h.Get)
	return router
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTicketCreate(t *testing.T) {
	svc := &MockBookingService{
		CreateTicketFunc: func(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error) {
			assert.Equal(t, int64(7), userID)
			return &domain.Ticket{
				ID:            1,
				Row:           req.Row,
				Seat:          req.Seat,
				ShowSessionID: req.ShowSession,
				OwnerID:       userID,
			}, nil
		},
	}
	router := setupTicketRouter(svc, 7)

	body, _ := json.Marshal(dto.CreateTicketRequest{Row: 3, Seat: 4, ShowSession: 1})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestTicketCreateSeatOutOfRange(t *testing.T) {
	svc := &MockBookingService{
		CreateTicketFunc: func(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error) {
			fe := domain.FieldErrors{}
			fe.Add("seat", "the seat must be from 1 to 24")
			return nil, fe
		},
	}
	router := setupTicketRouter(svc, 7)

	body, _ := json.Marshal(dto.CreateTicketRequest{Row: 3, Seat: 99, ShowSession: 1})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Fields["seat"])
}

func TestTicketCreateSeatTaken(t *testing.T) {
	svc := &MockBookingService{
		CreateTicketFunc: func(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error) {
			return nil, domain.ConflictFields("non_field_errors", domain.ErrSeatTaken)
		},
	}
	router := setupTicketRouter(svc, 7)

	body, _ := json.Marshal(dto.CreateTicketRequest{Row: 3, Seat: 4, ShowSession: 1})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.NotEmpty(t, resp.Error.Fields["non_field_errors"])
}

func TestTicketGetNotOwned(t *testing.T) {
	svc := &MockBookingService{
		GetTicketFunc: func(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error) {
			return nil, domain.ErrTicketNotFound
		},
	}
	router := setupTicketRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/5/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketGetDetail(t *testing.T) {
	showTime := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	svc := &MockBookingService{
		GetTicketFunc: func(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error) {
			return &domain.Ticket{
				ID:            5,
				Row:           3,
				Seat:          4,
				ShowSessionID: 1,
				OwnerID:       userID,
				ShowTitle:     "Journey to Mars",
				DomeName:      "Main Dome",
				OwnerUsername: "stargazer",
				ShowTime:      showTime,
				ThemeNames:    []string{"Mars"},
				ReservedAt:    showTime,
			}, nil
		},
	}
	router := setupTicketRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/5/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.TicketDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Journey to Mars", resp.Data.ShowSession.AstronomyShow.ShowName)
	assert.Equal(t, "Main Dome", resp.Data.ShowSession.PlanetariumDome.PlanetariumName)
	assert.Equal(t, "stargazer", resp.Data.Reservation.Visitor)
	assert.Equal(t, "2026-09-12", resp.Data.ShowSession.ShowTime)
}

func TestTicketList(t *testing.T) {
	svc := &MockBookingService{
		ListTicketsFunc: func(ctx context.Context, userID int64, filter *dto.TicketListFilter) ([]*domain.Ticket, error) {
			assert.Equal(t, "mars", filter.ShowSession)
			return []*domain.Ticket{
				{ID: 1, Row: 1, Seat: 1, ShowTitle: "Journey to Mars", DomeName: "Main Dome", OwnerUsername: "stargazer"},
			}, nil
		},
	}
	router := setupTicketRouter(svc, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/?show_session=mars", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []dto.TicketListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Journey to Mars", resp.Data[0].ShowSession)
	assert.Equal(t, "stargazer", resp.Data[0].Reservation)
}
