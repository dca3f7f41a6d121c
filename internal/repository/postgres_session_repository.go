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

// PostgresSessionRepository implements SessionRepository using PostgreSQL
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// sessionColumns selects a session joined with its show and dome
const sessionColumns = `ss.id, ss.astronomy_show_id, ss.planetarium_dome_id, ss.show_time,
	s.id, s.title, COALESCE(s.description, ''), s.image,
	d.id, d.name, d.rows, d.seats_in_row, d.image`

// scanSession scans a joined row into a ShowSession with Show and Dome set
func scanSession(row pgx.Row) (*domain.ShowSession, error) {
	session := &domain.ShowSession{
		Show: &domain.AstronomyShow{},
		Dome: &domain.PlanetariumDome{},
	}
	err := row.Scan(
		&session.ID,
		&session.AstronomyShowID,
		&session.PlanetariumDomeID,
		&session.ShowTime,
		&session.Show.ID,
		&session.Show.Title,
		&session.Show.Description,
		&session.Show.Image,
		&session.Dome.ID,
		&session.Dome.Name,
		&session.Dome.Rows,
		&session.Dome.SeatsInRow,
		&session.Dome.Image,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Create creates a new show session
func (r *PostgresSessionRepository) Create(ctx context.Context, session *domain.ShowSession) error {
	query := `
		INSERT INTO show_sessions (astronomy_show_id, planetarium_dome_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		session.AstronomyShowID,
		session.PlanetariumDomeID,
		session.ShowTime,
	).Scan(&session.ID)
}

// GetByID retrieves a session by ID with its show and dome loaded
func (r *PostgresSessionRepository) GetByID(ctx context.Context, id int64) (*domain.ShowSession, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM show_sessions ss
		JOIN astronomy_shows s ON s.id = ss.astronomy_show_id
		JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
		WHERE ss.id = $1
	`, sessionColumns)

	session, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Update persists the show, dome and date of a session
func (r *PostgresSessionRepository) Update(ctx context.Context, session *domain.ShowSession) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE show_sessions SET astronomy_show_id = $2, planetarium_dome_id = $3, show_time = $4 WHERE id = $1`,
		session.ID, session.AstronomyShowID, session.PlanetariumDomeID, session.ShowTime)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session; its tickets go with the cascade
func (r *PostgresSessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM show_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// List lists sessions matching the filter, show and dome loaded
func (r *PostgresSessionRepository) List(ctx context.Context, filter *SessionFilter) ([]*domain.ShowSession, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter != nil {
		if filter.ShowTitle != "" {
			conditions = append(conditions, fmt.Sprintf("s.title ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.ShowTitle)
			argIndex++
		}
		if filter.ShowDescription != "" {
			conditions = append(conditions, fmt.Sprintf("s.description ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.ShowDescription)
			argIndex++
		}
		if filter.DomeName != "" {
			conditions = append(conditions, fmt.Sprintf("d.name ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.DomeName)
			argIndex++
		}
		if filter.ShowTime != nil {
			conditions = append(conditions, fmt.Sprintf("ss.show_time = $%d", argIndex))
			args = append(args, *filter.ShowTime)
			argIndex++
		}
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM show_sessions ss
		JOIN astronomy_shows s ON s.id = ss.astronomy_show_id
		JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
	`, sessionColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY ss.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.ShowSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadShowThemes(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// loadShowThemes populates the Themes field of each nested show in one
// query. Sessions scheduling the same show each carry their own copy.
func (r *PostgresSessionRepository) loadShowThemes(ctx context.Context, sessions []*domain.ShowSession) error {
	if len(sessions) == 0 {
		return nil
	}

	byShowID := make(map[int64][]*domain.AstronomyShow, len(sessions))
	ids := make([]int64, 0, len(sessions))
	for _, session := range sessions {
		session.Show.Themes = []domain.ShowTheme{}
		if _, seen := byShowID[session.AstronomyShowID]; !seen {
			ids = append(ids, session.AstronomyShowID)
		}
		byShowID[session.AstronomyShowID] = append(byShowID[session.AstronomyShowID], session.Show)
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
		for _, show := range byShowID[showID] {
			show.Themes = append(show.Themes, theme)
		}
	}
	return rows.Err()
}
