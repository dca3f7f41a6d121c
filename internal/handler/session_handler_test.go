package handler

import (
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
)

// MockSessionService is a mock implementation of SessionService for testing
type MockSessionService struct {
	CreateSessionFunc func(ctx context.Context, req *dto.CreateSessionRequest) (*domain.ShowSession, error)
	GetSessionFunc    func(ctx context.Context, id int64) (*domain.ShowSession, error)
	ListSessionsFunc  func(ctx context.Context, filter *dto.SessionListFilter) ([]*domain.ShowSession, error)
	UpdateSessionFunc func(ctx context.Context, id int64, req *dto.CreateSessionRequest) (*domain.ShowSession, error)
	DeleteSessionFunc func(ctx context.Context, id int64) error
}

func (m *MockSessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*domain.ShowSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockSessionService) GetSession(ctx context.Context, id int64) (*domain.ShowSession, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionService) ListSessions(ctx context.Context, filter *dto.SessionListFilter) ([]*domain.ShowSession, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockSessionService) UpdateSession(ctx context.Context, id int64, req *dto.CreateSessionRequest) (*domain.ShowSession, error) {
	if m.UpdateSessionFunc != nil {
		return m.UpdateSessionFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockSessionService) DeleteSession(ctx context.Context, id int64) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, id)
	}
	return nil
}

func setupSessionRouter(svc *MockSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSessionHandler(svc)

	router.GET("/show_session/", h.List)
	router.GET("/show_session/:id/", h.Get)
	return router
}

func themedSession() *domain.ShowSession {
	return &domain.ShowSession{
		ID:                1,
		AstronomyShowID:   2,
		PlanetariumDomeID: 3,
		ShowTime:          time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Show: &domain.AstronomyShow{
			ID:          2,
			Title:       "Journey to Mars",
			Description: "A tour of the red planet",
			Themes:      []domain.ShowTheme{{ID: 5, Name: "Mars"}, {ID: 6, Name: "Exploration"}},
		},
		Dome: &domain.PlanetariumDome{ID: 3, Name: "Main Dome", Rows: 20, SeatsInRow: 24},
	}
}

func TestSessionListNestsShowWithThemes(t *testing.T) {
	svc := &MockSessionService{
		ListSessionsFunc: func(ctx context.Context, filter *dto.SessionListFilter) ([]*domain.ShowSession, error) {
			return []*domain.ShowSession{themedSession()}, nil
		},
	}
	router := setupSessionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/show_session/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []dto.SessionListItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)

	item := resp.Data[0]
	assert.Equal(t, "2026-09-12", item.ShowTime)
	assert.Equal(t, "Journey to Mars", item.AstronomyShow.ShowName)
	assert.Equal(t, "Main Dome", item.PlanetariumDome.PlanetariumName)

	require.Len(t, item.AstronomyShow.ShowTheme, 2)
	assert.Equal(t, "Mars", item.AstronomyShow.ShowTheme[0].Name)
	assert.Equal(t, "Exploration", item.AstronomyShow.ShowTheme[1].Name)
}

func TestSessionGetFlat(t *testing.T) {
	svc := &MockSessionService{
		GetSessionFunc: func(ctx context.Context, id int64) (*domain.ShowSession, error) {
			assert.Equal(t, int64(1), id)
			return themedSession(), nil
		},
	}
	router := setupSessionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/show_session/1/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Detail is flat ids, not the nested list shape
	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.JSONEq(t, "2", string(resp.Data["astronomy_show"]))
	assert.JSONEq(t, "3", string(resp.Data["planetarium_dome"]))
	assert.JSONEq(t, `"2026-09-12"`, string(resp.Data["show_time"]))
}
