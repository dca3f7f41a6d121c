package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/repository"
	"github.com/tkachuk2291/planetarium-api-service/internal/storage"
)

// showService implements ShowService
type showService struct {
	showRepo  repository.ShowRepository
	themeRepo repository.ThemeRepository
	images    storage.ImageStore
}

// NewShowService creates a new ShowService
func NewShowService(showRepo repository.ShowRepository, themeRepo repository.ThemeRepository, images storage.ImageStore) ShowService {
	return &showService{
		showRepo:  showRepo,
		themeRepo: themeRepo,
		images:    images,
	}
}

// CreateShow creates a new show with its theme links
func (s *showService) CreateShow(ctx context.Context, req *dto.CreateShowRequest) (*domain.AstronomyShow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Every referenced theme must exist before the show is written
	themes, err := s.themeRepo.GetByIDs(ctx, req.ShowTheme)
	if err != nil {
		return nil, err
	}
	if len(themes) != len(uniqueIDs(req.ShowTheme)) {
		fe := domain.FieldErrors{}
		fe.Add("show_theme", "one or more show themes do not exist")
		return nil, fe
	}

	show := &domain.AstronomyShow{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.showRepo.Create(ctx, show, uniqueIDs(req.ShowTheme)); err != nil {
		if errors.Is(err, domain.ErrShowTitleTaken) {
			return nil, domain.ConflictFields("title", err)
		}
		return nil, err
	}

	show.Themes = make([]domain.ShowTheme, 0, len(themes))
	for _, theme := range themes {
		show.Themes = append(show.Themes, *theme)
	}
	return show, nil
}

// GetShow retrieves a show by ID
func (s *showService) GetShow(ctx context.Context, id int64) (*domain.AstronomyShow, error) {
	return s.showRepo.GetByID(ctx, id)
}

// ListShows lists shows matching the filter
func (s *showService) ListShows(ctx context.Context, filter *dto.ShowListFilter) ([]*domain.AstronomyShow, error) {
	repoFilter := &repository.ShowFilter{}
	if filter != nil {
		repoFilter.Title = filter.ShowName
		repoFilter.Description = filter.Description
		repoFilter.ThemeName = filter.ShowTheme
	}
	return s.showRepo.List(ctx, repoFilter)
}

// UpdateShow replaces the fields and theme links of a show
func (s *showService) UpdateShow(ctx context.Context, id int64, req *dto.CreateShowRequest) (*domain.AstronomyShow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	themes, err := s.themeRepo.GetByIDs(ctx, req.ShowTheme)
	if err != nil {
		return nil, err
	}
	if len(themes) != len(uniqueIDs(req.ShowTheme)) {
		fe := domain.FieldErrors{}
		fe.Add("show_theme", "one or more show themes do not exist")
		return nil, fe
	}

	show, err := s.showRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	show.Title = req.Title
	show.Description = req.Description
	if err := s.showRepo.Update(ctx, show, uniqueIDs(req.ShowTheme)); err != nil {
		if errors.Is(err, domain.ErrShowTitleTaken) {
			return nil, domain.ConflictFields("title", err)
		}
		return nil, err
	}

	show.Themes = make([]domain.ShowTheme, 0, len(themes))
	for _, theme := range themes {
		show.Themes = append(show.Themes, *theme)
	}
	return show, nil
}

// DeleteShow removes a show
func (s *showService) DeleteShow(ctx context.Context, id int64) error {
	return s.showRepo.Delete(ctx, id)
}

// UploadImage stores an image for the show and records its path
func (s *showService) UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (string, error) {
	show, err := s.showRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	path, err := s.images.Save(storage.ShowImagePrefix, show.Title, filepath.Ext(filename), file)
	if err != nil {
		return "", fmt.Errorf("failed to store show image: %w", err)
	}

	if err := s.showRepo.UpdateImage(ctx, id, path); err != nil {
		return "", err
	}
	return path, nil
}

// uniqueIDs deduplicates an ID list, preserving order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
