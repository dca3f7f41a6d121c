package service

import (
	"context"
	"errors"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/repository"
)

// sessionService implements SessionService
type sessionService struct {
	sessionRepo repository.SessionRepository
	showRepo    repository.ShowRepository
	domeRepo    repository.DomeRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo repository.SessionRepository, showRepo repository.ShowRepository, domeRepo repository.DomeRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		showRepo:    showRepo,
		domeRepo:    domeRepo,
	}
}

// CreateSession schedules a show in a dome on a date
func (s *sessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*domain.ShowSession, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	showTime, err := dto.ParseShowTime(req.ShowTime)
	if err != nil {
		fe := domain.FieldErrors{}
		fe.Add("show_time", "show_time must be a date in YYYY-MM-DD format")
		return nil, fe
	}

	// Both referenced records must exist before the session is written
	fe := domain.FieldErrors{}
	show, err := s.showRepo.GetByID(ctx, req.AstronomyShow)
	if err != nil {
		if !errors.Is(err, domain.ErrShowNotFound) {
			return nil, err
		}
		fe.Add("astronomy_show", "astronomy show does not exist")
	}
	dome, err := s.domeRepo.GetByID(ctx, req.PlanetariumDome)
	if err != nil {
		if !errors.Is(err, domain.ErrDomeNotFound) {
			return nil, err
		}
		fe.Add("planetarium_dome", "planetarium dome does not exist")
	}
	if fe.HasErrors() {
		return nil, fe
	}

	session := &domain.ShowSession{
		AstronomyShowID:   req.AstronomyShow,
		PlanetariumDomeID: req.PlanetariumDome,
		ShowTime:          showTime,
		Show:              show,
		Dome:              dome,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession reschedules a session
func (s *sessionService) UpdateSession(ctx context.Context, id int64, req *dto.CreateSessionRequest) (*domain.ShowSession, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	showTime, err := dto.ParseShowTime(req.ShowTime)
	if err != nil {
		fe := domain.FieldErrors{}
		fe.Add("show_time", "show_time must be a date in YYYY-MM-DD format")
		return nil, fe
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fe := domain.FieldErrors{}
	show, err := s.showRepo.GetByID(ctx, req.AstronomyShow)
	if err != nil {
		if !errors.Is(err, domain.ErrShowNotFound) {
			return nil, err
		}
		fe.Add("astronomy_show", "astronomy show does not exist")
	}
	dome, err := s.domeRepo.GetByID(ctx, req.PlanetariumDome)
	if err != nil {
		if !errors.Is(err, domain.ErrDomeNotFound) {
			return nil, err
		}
		fe.Add("planetarium_dome", "planetarium dome does not exist")
	}
	if fe.HasErrors() {
		return nil, fe
	}

	session.AstronomyShowID = req.AstronomyShow
	session.PlanetariumDomeID = req.PlanetariumDome
	session.ShowTime = showTime
	session.Show = show
	session.Dome = dome
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession removes a session
func (s *sessionService) DeleteSession(ctx context.Context, id int64) error {
	return s.sessionRepo.Delete(ctx, id)
}

// GetSession retrieves a session by ID with its show and dome
func (s *sessionService) GetSession(ctx context.Context, id int64) (*domain.ShowSession, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// ListSessions lists sessions matching the filter
func (s *sessionService) ListSessions(ctx context.Context, filter *dto.SessionListFilter) ([]*domain.ShowSession, error) {
	repoFilter := &repository.SessionFilter{}
	if filter != nil {
		repoFilter.ShowTitle = filter.ShowName
		repoFilter.ShowDescription = filter.Description
		repoFilter.DomeName = filter.Name
		if filter.ShowTime != "" {
			showTime, err := dto.ParseShowTime(filter.ShowTime)
			if err != nil {
				fe := domain.FieldErrors{}
				fe.Add("show_time", "show_time must be a date in YYYY-MM-DD format")
				return nil, fe
			}
			repoFilter.ShowTime = &showTime
		}
	}
	return s.sessionRepo.List(ctx, repoFilter)
}
