package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

// PostgresDomeRepository implements DomeRepository using PostgreSQL
type PostgresDomeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDomeRepository creates a new PostgresDomeRepository
func NewPostgresDomeRepository(pool *pgxpool.Pool) *PostgresDomeRepository {
	return &PostgresDomeRepository{pool: pool}
}

// Create creates a new dome
func (r *PostgresDomeRepository) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	query := `INSERT INTO planetarium_domes (name, rows, seats_in_row) VALUES ($1, $2, $3) RETURNING id`

	err := r.pool.QueryRow(ctx, query, dome.Name, dome.Rows, dome.SeatsInRow).Scan(&dome.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDomeNameTaken
		}
		return err
	}
	return nil
}

// GetByID retrieves a dome by ID
func (r *PostgresDomeRepository) GetByID(ctx context.Context, id int64) (*domain.PlanetariumDome, error) {
	query := `SELECT id, name, rows, seats_in_row, image FROM planetarium_domes WHERE id = $1`

	dome := &domain.PlanetariumDome{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsInRow, &dome.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDomeNotFound
		}
		return nil, err
	}
	return dome, nil
}

// List lists domes matching the filter
func (r *PostgresDomeRepository) List(ctx context.Context, filter *DomeFilter) ([]*domain.PlanetariumDome, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter != nil {
		if filter.Name != "" {
			conditions = append(conditions, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.Name)
			argIndex++
		}
		if filter.Rows != nil {
			conditions = append(conditions, fmt.Sprintf("rows = $%d", argIndex))
			args = append(args, *filter.Rows)
			argIndex++
		}
		if filter.SeatsInRow != nil {
			conditions = append(conditions, fmt.Sprintf("seats_in_row = $%d", argIndex))
			args = append(args, *filter.SeatsInRow)
			argIndex++
		}
	}

	query := `SELECT id, name, rows, seats_in_row, image FROM planetarium_domes`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domes []*domain.PlanetariumDome
	for rows.Next() {
		dome := &domain.PlanetariumDome{}
		if err := rows.Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsInRow, &dome.Image); err != nil {
			return nil, err
		}
		domes = append(domes, dome)
	}
	return domes, rows.Err()
}

// Update persists the name and geometry of a dome
func (r *PostgresDomeRepository) Update(ctx context.Context, dome *domain.PlanetariumDome) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE planetarium_domes SET name = $2, rows = $3, seats_in_row = $4 WHERE id = $1`,
		dome.ID, dome.Name, dome.Rows, dome.SeatsInRow)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDomeNameTaken
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDomeNotFound
	}
	return nil
}

// Delete removes a dome; its sessions go with the cascade
func (r *PostgresDomeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM planetarium_domes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDomeNotFound
	}
	return nil
}

// UpdateImage sets the stored image reference of a dome
func (r *PostgresDomeRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	result, err := r.pool.Exec(ctx, `UPDATE planetarium_domes SET image = $2 WHERE id = $1`, id, image)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDomeNotFound
	}
	return nil
}
