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

// PostgresShowRepository implements ShowRepository using PostgreSQL
type PostgresShowRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresShowRepository creates a new PostgresShowRepository
func NewPostgresShowRepository(pool *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{pool: pool}
}

// Create creates a new show and links its themes
func (r *PostgresShowRepository) Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO astronomy_shows (title, description) VALUES ($1, $2) RETURNING id`
	err = tx.QueryRow(ctx, query, show.Title, show.Description).Scan(&show.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShowTitleTaken
		}
		return err
	}

	for _, themeID := range themeIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO astronomy_show_themes (astronomy_show_id, show_theme_id) VALUES ($1, $2)`,
			show.ID, themeID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a show by ID with its themes loaded
func (r *PostgresShowRepository) GetByID(ctx context.Context, id int64) (*domain.AstronomyShow, error) {
	query := `SELECT id, title, COALESCE(description, ''), image FROM astronomy_shows WHERE id = $1`

	show := &domain.AstronomyShow{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&show.ID, &show.Title, &show.Description, &show.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowNotFound
		}
		return nil, err
	}

	if err := r.loadThemes(ctx, []*domain.AstronomyShow{show}); err != nil {
		return nil, err
	}
	return show, nil
}

// List lists shows matching the filter, themes loaded
func (r *PostgresShowRepository) List(ctx context.Context, filter *ShowFilter) ([]*domain.AstronomyShow, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	join := ""
	if filter != nil {
		if filter.Title != "" {
			conditions = append(conditions, fmt.Sprintf("s.title ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.Title)
			argIndex++
		}
		if filter.Description != "" {
			conditions = append(conditions, fmt.Sprintf("s.description ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.Description)
			argIndex++
		}
		if filter.ThemeName != "" {
			join = ` JOIN astronomy_show_themes st ON st.astronomy_show_id = s.id
				JOIN show_themes t ON t.id = st.show_theme_id`
			conditions = append(conditions, fmt.Sprintf("t.name ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.ThemeName)
			argIndex++
		}
	}

	query := `SELECT DISTINCT s.id, s.title, COALESCE(s.description, ''), s.image FROM astronomy_shows s` + join
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shows []*domain.AstronomyShow
	for rows.Next() {
		show := &domain.AstronomyShow{}
		if err := rows.Scan(&show.ID, &show.Title, &show.Description, &show.Image); err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadThemes(ctx, shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Update persists a show and replaces its theme links
func (r *PostgresShowRepository) Update(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE astronomy_shows SET title = $2, description = $3 WHERE id = $1`,
		show.ID, show.Title, show.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShowTitleTaken
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM astronomy_show_themes WHERE astronomy_show_id = $1`, show.ID); err != nil {
		return err
	}
	for _, themeID := range themeIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO astronomy_show_themes (astronomy_show_id, show_theme_id) VALUES ($1, $2)`,
			show.ID, themeID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes a show; links and sessions go with the cascade
func (r *PostgresShowRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM astronomy_shows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

// UpdateImage sets the stored image reference of a show
func (r *PostgresShowRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	result, err := r.pool.Exec(ctx, `UPDATE astronomy_shows SET image = $2 WHERE id = $1`, id, image)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

// loadThemes populates the Themes field of each show in one query
func (r *PostgresShowRepository) loadThemes(ctx context.Context, shows []*domain.AstronomyShow) error {
	if len(shows) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.AstronomyShow, len(shows))
	ids := make([]int64, 0, len(shows))
	for _, show := range shows {
		show.Themes = []domain.ShowTheme{}
		byID[show.ID] = show
		ids = append(ids, show.ID)
	}

	query := `
		SELECT st.astronomy_show_id, t.id, t.name
		FROM astronomy_show_themes st
		JOIN show_themes t ON t.id = st.show_theme_id
		WHERE st.astronomy_show_id = ANY($1)
		ORDER BY t.id
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var showID int64
		var theme domain.ShowTheme
		if err := rows.Scan(&showID, &theme.ID, &theme.Name); err != nil {
			return err
		}
		if show, ok := byID[showID]; ok {
			show.Themes = append(show.Themes, theme)
		}
	}
	return rows.Err()
}
