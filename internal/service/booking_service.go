package service

import (
	"context"
	"errors"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
	"github.com/tkachuk2291/planetarium-api-service/internal/repository"
)

// bookingService implements BookingService
type bookingService struct {
	ticketRepo  repository.TicketRepository
	sessionRepo repository.SessionRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(ticketRepo repository.TicketRepository, sessionRepo repository.SessionRepository) BookingService {
	return &bookingService{
		ticketRepo:  ticketRepo,
		sessionRepo: sessionRepo,
	}
}

// CreateTicket books a seat in a session for the user. The seat is checked
// against the geometry of the dome hosting the session, and the reservation
// plus ticket are written in one transaction.
func (s *bookingService) CreateTicket(ctx context.Context, userID int64, req *dto.CreateTicketRequest) (*domain.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, req.ShowSession)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			fe := domain.FieldErrors{}
			fe.Add("show_session", "show session does not exist")
			return nil, fe
		}
		return nil, err
	}

	if err := domain.ValidateTicketSeat(req.Row, req.Seat, session.Dome); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Row:           req.Row,
		Seat:          req.Seat,
		ShowSessionID: session.ID,
	}
	if err := s.ticketRepo.CreateWithReservation(ctx, userID, ticket); err != nil {
		if errors.Is(err, domain.ErrSeatTaken) {
			return nil, domain.ConflictFields("non_field_errors", err)
		}
		return nil, err
	}

	ticket.ShowTitle = session.Show.Title
	ticket.DomeName = session.Dome.Name
	ticket.ShowTime = session.ShowTime
	return ticket, nil
}

// GetTicket retrieves one of the user's tickets with full context. Tickets
// belonging to other users are reported as not found, admins included.
func (s *bookingService) GetTicket(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.OwnerID != userID {
		return nil, domain.ErrTicketNotFound
	}

	names, err := s.ticketRepo.ThemeNames(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}
	ticket.ThemeNames = names
	return ticket, nil
}

// ListTickets lists the user's tickets matching the filter
func (s *bookingService) ListTickets(ctx context.Context, userID int64, filter *dto.TicketListFilter) ([]*domain.Ticket, error) {
	repoFilter := &repository.TicketFilter{}
	if filter != nil {
		repoFilter.ShowTitle = filter.ShowSession
		repoFilter.OwnerUsername = filter.Reservation
		repoFilter.DomeName = filter.PlanetariumDome
	}
	return s.ticketRepo.ListByUser(ctx, userID, repoFilter)
}
