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

// PostgresTicketRepository implements TicketRepository using PostgreSQL
type PostgresTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketRepository creates a new PostgresTicketRepository
func NewPostgresTicketRepository(pool *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{pool: pool}
}

// CreateWithReservation creates a reservation for the user and the ticket
// under it in a single transaction. A failed seat insert rolls the
// reservation back, so no empty reservations are left behind.
func (r *PostgresTicketRepository) CreateWithReservation(ctx context.Context, userID int64, ticket *domain.Ticket) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO reservations (user_id) VALUES ($1) RETURNING id, created_at`,
		userID,
	).Scan(&ticket.ReservationID, &ticket.ReservedAt)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO tickets (row_number, seat_number, show_session_id, reservation_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, ticket.Row, ticket.Seat, ticket.ShowSessionID, ticket.ReservationID).Scan(&ticket.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatTaken
		}
		return err
	}

	ticket.OwnerID = userID
	return tx.Commit(ctx)
}

// ticketColumns selects a ticket joined with its session, show, dome and owner
const ticketColumns = `t.id, t.row_number, t.seat_number, t.show_session_id, t.reservation_id,
	r.user_id, s.title, d.name, u.username, ss.show_time, r.created_at`

// GetByID retrieves a ticket by ID with its session and reservation context
func (r *PostgresTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets t
		JOIN show_sessions ss ON ss.id = t.show_session_id
		JOIN astronomy_shows s ON s.id = ss.astronomy_show_id
		JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
		JOIN reservations r ON r.id = t.reservation_id
		JOIN users u ON u.id = r.user_id
		WHERE t.id = $1
	`, ticketColumns)

	ticket := &domain.Ticket{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Row,
		&ticket.Seat,
		&ticket.ShowSessionID,
		&ticket.ReservationID,
		&ticket.OwnerID,
		&ticket.ShowTitle,
		&ticket.DomeName,
		&ticket.OwnerUsername,
		&ticket.ShowTime,
		&ticket.ReservedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

// ListByUser lists the tickets owned by the user, filtered
func (r *PostgresTicketRepository) ListByUser(ctx context.Context, userID int64, filter *TicketFilter) ([]*domain.Ticket, error) {
	conditions := []string{"r.user_id = $1"}
	args := []interface{}{userID}
	argIndex := 2

	if filter != nil {
		if filter.ShowTitle != "" {
			conditions = append(conditions, fmt.Sprintf("s.title ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.ShowTitle)
			argIndex++
		}
		if filter.OwnerUsername != "" {
			conditions = append(conditions, fmt.Sprintf("u.username ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.OwnerUsername)
			argIndex++
		}
		if filter.DomeName != "" {
			conditions = append(conditions, fmt.Sprintf("d.name ILIKE '%%' || $%d || '%%'", argIndex))
			args = append(args, filter.DomeName)
			argIndex++
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets t
		JOIN show_sessions ss ON ss.id = t.show_session_id
		JOIN astronomy_shows s ON s.id = ss.astronomy_show_id
		JOIN planetarium_domes d ON d.id = ss.planetarium_dome_id
		JOIN reservations r ON r.id = t.reservation_id
		JOIN users u ON u.id = r.user_id
		WHERE %s
		ORDER BY t.id
	`, ticketColumns, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		ticket := &domain.Ticket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.ShowSessionID,
			&ticket.ReservationID,
			&ticket.OwnerID,
			&ticket.ShowTitle,
			&ticket.DomeName,
			&ticket.OwnerUsername,
			&ticket.ShowTime,
			&ticket.ReservedAt,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, rows.Err()
}

// ThemeNames retrieves the theme names of the show behind a ticket
func (r *PostgresTicketRepository) ThemeNames(ctx context.Context, ticketID int64) ([]string, error) {
	query := `
		SELECT th.name
		FROM tickets t
		JOIN show_sessions ss ON ss.id = t.show_session_id
		JOIN astronomy_show_themes st ON st.astronomy_show_id = ss.astronomy_show_id
		JOIN show_themes th ON th.id = st.show_theme_id
		WHERE t.id = $1
		ORDER BY th.id
	`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
