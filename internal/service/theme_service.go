package service

import (
	"context"
	"errors"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/repository"
)

// themeService implements ThemeService
type themeService struct {
	themeRepo repository.ThemeRepository
}

// NewThemeService creates a new ThemeService
func NewThemeService(themeRepo repository.ThemeRepository) ThemeService {
	return &themeService{themeRepo: themeRepo}
}

// CreateTheme creates a new show theme
func (s *themeService) CreateTheme(ctx context.Context, req *dto.CreateThemeRequest) (*domain.ShowTheme, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	theme := &domain.ShowTheme{Name: req.Name}
	if err := s.themeRepo.Create(ctx, theme); err != nil {
		if errors.Is(err, domain.ErrThemeNameTaken) {
			return nil, domain.ConflictFields("name", err)
		}
		return nil, err
	}
	return theme, nil
}

// GetTheme retrieves a theme by ID
func (s *themeService) GetTheme(ctx context.Context, id int64) (*domain.ShowTheme, error) {
	return s.themeRepo.GetByID(ctx, id)
}

// UpdateTheme renames a theme
func (s *themeService) UpdateTheme(ctx context.Context, id int64, req *dto.CreateThemeRequest) (*domain.ShowTheme, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	theme, err := s.themeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	theme.Name = req.Name
	if err := s.themeRepo.Update(ctx, theme); err != nil {
		if errors.Is(err, domain.ErrThemeNameTaken) {
			return nil, domain.ConflictFields("name", err)
		}
		return nil, err
	}
	return theme, nil
}

// DeleteTheme removes a theme
func (s *themeService) DeleteTheme(ctx context.Context, id int64) error {
	return s.themeRepo.Delete(ctx, id)
}

// ListThemes lists themes matching the filter
func (s *themeService) ListThemes(ctx context.Context, filter *dto.ThemeListFilter) ([]*domain.ShowTheme, error) {
	repoFilter := &repository.ThemeFilter{}
	if filter != nil {
		repoFilter.Name = filter.Name
	}
	return s.themeRepo.List(ctx, repoFilter)
}
