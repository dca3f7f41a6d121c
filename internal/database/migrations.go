package database

import (
	"context"
	"fmt"

	"github.com/tkachuk2291/planetarium-api-service/pkg/database"
	"github.com/tkachuk2291/planetarium-api-service/pkg/logger"
)

// RunMigrations applies the schema idempotently at startup
func RunMigrations(ctx context.Context, db *database.PostgresDB) error {
	log := logger.Get()
	log.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createShowThemesTable,
		createAstronomyShowsTable,
		createShowThemeLinkTable,
		createPlanetariumDomesTable,
		createShowSessionsTable,
		createReservationsTable,
		createTicketsTable,
	}

	for i, migration := range migrations {
		if err := db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(150) UNIQUE NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    first_name VARCHAR(150) NOT NULL DEFAULT '',
    last_name VARCHAR(150) NOT NULL DEFAULT '',
    password_hash VARCHAR(128) NOT NULL,
    role VARCHAR(20) NOT NULL DEFAULT 'user',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    image VARCHAR(512),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (role IN ('user', 'admin'))
);`

const createShowThemesTable = `
CREATE TABLE IF NOT EXISTS show_themes (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(256) UNIQUE NOT NULL
);`

const createAstronomyShowsTable = `
CREATE TABLE IF NOT EXISTS astronomy_shows (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(256) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image VARCHAR(512)
);`

const createShowThemeLinkTable = `
CREATE TABLE IF NOT EXISTS astronomy_show_themes (
    astronomy_show_id BIGINT NOT NULL REFERENCES astronomy_shows(id) ON DELETE CASCADE,
    show_theme_id BIGINT NOT NULL REFERENCES show_themes(id) ON DELETE CASCADE,

    PRIMARY KEY (astronomy_show_id, show_theme_id)
);`

const createPlanetariumDomesTable = `
CREATE TABLE IF NOT EXISTS planetarium_domes (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(256) UNIQUE NOT NULL,
    rows INTEGER NOT NULL,
    seats_in_row INTEGER NOT NULL,
    image VARCHAR(512),

    CHECK (rows BETWEEN 1 AND 50),
    CHECK (seats_in_row BETWEEN 1 AND 630)
);`

const createShowSessionsTable = `
CREATE TABLE IF NOT EXISTS show_sessions (
    id BIGSERIAL PRIMARY KEY,
    astronomy_show_id BIGINT NOT NULL REFERENCES astronomy_shows(id) ON DELETE CASCADE,
    planetarium_dome_id BIGINT NOT NULL REFERENCES planetarium_domes(id) ON DELETE CASCADE,
    show_time DATE NOT NULL
);`

const createReservationsTable = `
CREATE TABLE IF NOT EXISTS reservations (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createTicketsTable = `
CREATE TABLE IF NOT EXISTS tickets (
    id BIGSERIAL PRIMARY KEY,
    row_number INTEGER NOT NULL,
    seat_number INTEGER NOT NULL,
    show_session_id BIGINT NOT NULL REFERENCES show_sessions(id) ON DELETE CASCADE,
    reservation_id BIGINT NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,

    UNIQUE (show_session_id, row_number, seat_number)
);`
