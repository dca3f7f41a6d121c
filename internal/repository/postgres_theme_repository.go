package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
)

const pgUniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// PostgresThemeRepository implements ThemeRepository using PostgreSQL
type PostgresThemeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresThemeRepository creates a new PostgresThemeRepository
func NewPostgresThemeRepository(pool *pgxpool.Pool) *PostgresThemeRepository {
	return &PostgresThemeRepository{pool: pool}
}

// Create creates a new show theme
func (r *PostgresThemeRepository) Create(ctx context.Context, theme *domain.ShowTheme) error {
	query := `INSERT INTO show_themes (name) VALUES ($1) RETURNING id`

	err := r.pool.QueryRow(ctx, query, theme.Name).Scan(&theme.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrThemeNameTaken
		}
		return err
	}
	return nil
}

// GetByID retrieves a theme by ID
func (r *PostgresThemeRepository) GetByID(ctx context.Context, id int64) (*domain.ShowTheme, error) {
	query := `SELECT id, name FROM show_themes WHERE id = $1`

	theme := &domain.ShowTheme{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&theme.ID, &theme.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, err
	}
	return theme, nil
}

// List lists themes matching the filter
func (r *PostgresThemeRepository) List(ctx context.Context, filter *ThemeFilter) ([]*domain.ShowTheme, error) {
	query := `SELECT id, name FROM show_themes`
	var args []interface{}

	if filter != nil && filter.Name != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, filter.Name)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []*domain.ShowTheme
	for rows.Next() {
		theme := &domain.ShowTheme{}
		if err := rows.Scan(&theme.ID, &theme.Name); err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	return themes, rows.Err()
}

// Update persists the name of a theme
func (r *PostgresThemeRepository) Update(ctx context.Context, theme *domain.ShowTheme) error {
	result, err := r.pool.Exec(ctx, `UPDATE show_themes SET name = $2 WHERE id = $1`, theme.ID, theme.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrThemeNameTaken
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrThemeNotFound
	}
	return nil
}

// Delete removes a theme; show links are dropped by the cascade
func (r *PostgresThemeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM show_themes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrThemeNotFound
	}
	return nil
}

// GetByIDs retrieves the themes for the given IDs
func (r *PostgresThemeRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.ShowTheme, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id, name FROM show_themes WHERE id = ANY($1) ORDER BY id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []*domain.ShowTheme
	for rows.Next() {
		theme := &domain.ShowTheme{}
		if err := rows.Scan(&theme.ID, &theme.Name); err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	return themes, rows.Err()
}
