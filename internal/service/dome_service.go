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

// domeService implements DomeService
type domeService struct {
	domeRepo repository.DomeRepository
	images   storage.ImageStore
}

// NewDomeService creates a new DomeService
func NewDomeService(domeRepo repository.DomeRepository, images storage.ImageStore) DomeService {
	return &domeService{
		domeRepo: domeRepo,
		images:   images,
	}
}

// CreateDome creates a new dome
func (s *domeService) CreateDome(ctx context.Context, req *dto.CreateDomeRequest) (*domain.PlanetariumDome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dome := &domain.PlanetariumDome{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}
	if err := s.domeRepo.Create(ctx, dome); err != nil {
		if errors.Is(err, domain.ErrDomeNameTaken) {
			return nil, domain.ConflictFields("name", err)
		}
		return nil, err
	}
	return dome, nil
}

// GetDome retrieves a dome by ID
func (s *domeService) GetDome(ctx context.Context, id int64) (*domain.PlanetariumDome, error) {
	return s.domeRepo.GetByID(ctx, id)
}

// ListDomes lists domes matching the filter
func (s *domeService) ListDomes(ctx context.Context, filter *dto.DomeListFilter) ([]*domain.PlanetariumDome, error) {
	repoFilter := &repository.DomeFilter{}
	if filter != nil {
		repoFilter.Name = filter.PlanetariumName
		repoFilter.Rows = filter.Rows
		repoFilter.SeatsInRow = filter.SeatsInRow
	}
	return s.domeRepo.List(ctx, repoFilter)
}

// UpdateDome replaces the name and geometry of a dome
func (s *domeService) UpdateDome(ctx context.Context, id int64, req *dto.CreateDomeRequest) (*domain.PlanetariumDome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dome, err := s.domeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dome.Name = req.Name
	dome.Rows = req.Rows
	dome.SeatsInRow = req.SeatsInRow
	if err := s.domeRepo.Update(ctx, dome); err != nil {
		if errors.Is(err, domain.ErrDomeNameTaken) {
			return nil, domain.ConflictFields("name", err)
		}
		return nil, err
	}
	return dome, nil
}

// DeleteDome removes a dome
func (s *domeService) DeleteDome(ctx context.Context, id int64) error {
	return s.domeRepo.Delete(ctx, id)
}

// UploadImage stores an image for the dome and records its path
func (s *domeService) UploadImage(ctx context.Context, id int64, filename string, file io.Reader) (string, error) {
	dome, err := s.domeRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	path, err := s.images.Save(storage.DomeImagePrefix, dome.Name, filepath.Ext(filename), file)
	if err != nil {
		return "", fmt.Errorf("failed to store dome image: %w", err)
	}

	if err := s.domeRepo.UpdateImage(ctx, id, path); err != nil {
		return "", err
	}
	return path, nil
}
