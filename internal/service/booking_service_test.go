package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/dto"
)

func seedSession(repo *MockSessionRepository, rows, seatsInRow int) *domain.ShowSession {
	session := &domain.ShowSession{
		AstronomyShowID:   1,
		PlanetariumDomeID: 1,
		ShowTime:          time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Show:              &domain.AstronomyShow{ID: 1, Title: "Journey to Mars"},
		Dome:              &domain.PlanetariumDome{ID: 1, Name: "Main Dome", Rows: rows, SeatsInRow: seatsInRow},
	}
	repo.Create(context.Background(), session)
	return session
}

func TestCreateTicket(t *testing.T) {
	tests := []struct {
		name       string
		row        int
		seat       int
		sessionID  int64
		wantFields []string
	}{
		{name: "valid booking", row: 1, seat: 1, sessionID: 1},
		{name: "last seat in dome", row: 10, seat: 15, sessionID: 1},
		{name: "row beyond dome", row: 11, seat: 1, sessionID: 1, wantFields: []string{"row"}},
		{name: "seat beyond dome", row: 1, seat: 16, sessionID: 1, wantFields: []string{"seat"}},
		{name: "row and seat beyond dome", row: 20, seat: 40, sessionID: 1, wantFields: []string{"row", "seat"}},
		{name: "unknown session", row: 1, seat: 1, sessionID: 42, wantFields: []string{"show_session"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionRepo := NewMockSessionRepository()
			seedSession(sessionRepo, 10, 15)
			svc := NewBookingService(NewMockTicketRepository(), sessionRepo)

			ticket, err := svc.CreateTicket(context.Background(), 7, &dto.CreateTicketRequest{
				Row:         tt.row,
				Seat:        tt.seat,
				ShowSession: tt.sessionID,
			})

			if len(tt.wantFields) > 0 {
				fe, ok := domain.AsFieldErrors(err)
				if !ok {
					t.Fatalf("expected field errors, got %v", err)
				}
				for _, field := range tt.wantFields {
					if len(fe[field]) == 0 {
						t.Errorf("expected error for field %q, got %v", field, fe)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ticket.ID == 0 || ticket.ReservationID == 0 {
				t.Error("expected ticket and reservation to be persisted")
			}
			if ticket.OwnerID != 7 {
				t.Errorf("expected owner 7, got %d", ticket.OwnerID)
			}
			if ticket.ShowTitle != "Journey to Mars" {
				t.Errorf("unexpected show title %q", ticket.ShowTitle)
			}
		})
	}
}

func TestCreateTicketSeatTaken(t *testing.T) {
	sessionRepo := NewMockSessionRepository()
	seedSession(sessionRepo, 10, 15)
	svc := NewBookingService(NewMockTicketRepository(), sessionRepo)

	req := &dto.CreateTicketRequest{Row: 3, Seat: 4, ShowSession: 1}
	if _, err := svc.CreateTicket(context.Background(), 1, req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Same seat, same session, different user
	_, err := svc.CreateTicket(context.Background(), 2, req)
	fe, ok := domain.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if len(fe["non_field_errors"]) == 0 {
		t.Errorf("expected non_field_errors, got %v", fe)
	}
}

func TestCreateTicketSameSeatDifferentSessions(t *testing.T) {
	sessionRepo := NewMockSessionRepository()
	seedSession(sessionRepo, 10, 15)
	seedSession(sessionRepo, 10, 15)
	svc := NewBookingService(NewMockTicketRepository(), sessionRepo)

	if _, err := svc.CreateTicket(context.Background(), 1, &dto.CreateTicketRequest{Row: 3, Seat: 4, ShowSession: 1}); err != nil {
		t.Fatalf("booking in first session failed: %v", err)
	}
	if _, err := svc.CreateTicket(context.Background(), 1, &dto.CreateTicketRequest{Row: 3, Seat: 4, ShowSession: 2}); err != nil {
		t.Fatalf("same seat in another session should be free: %v", err)
	}
}

func TestGetTicketOwnerScope(t *testing.T) {
	sessionRepo := NewMockSessionRepository()
	seedSession(sessionRepo, 10, 15)
	ticketRepo := NewMockTicketRepository()
	svc := NewBookingService(ticketRepo, sessionRepo)

	ticket, err := svc.CreateTicket(context.Background(), 1, &dto.CreateTicketRequest{Row: 1, Seat: 1, ShowSession: 1})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	ticketRepo.themeNames[ticket.ID] = []string{"Mars", "Space travel"}

	got, err := svc.GetTicket(context.Background(), 1, ticket.ID)
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if len(got.ThemeNames) != 2 {
		t.Errorf("expected theme names to be loaded, got %v", got.ThemeNames)
	}

	// Another user, admin or not, sees not found
	if _, err := svc.GetTicket(context.Background(), 2, ticket.ID); !errors.Is(err, domain.ErrTicketNotFound) {
		t.Errorf("expected not found for non-owner, got %v", err)
	}
}

func TestListTicketsOwnerScope(t *testing.T) {
	sessionRepo := NewMockSessionRepository()
	seedSession(sessionRepo, 10, 15)
	svc := NewBookingService(NewMockTicketRepository(), sessionRepo)

	svc.CreateTicket(context.Background(), 1, &dto.CreateTicketRequest{Row: 1, Seat: 1, ShowSession: 1})
	svc.CreateTicket(context.Background(), 1, &dto.CreateTicketRequest{Row: 1, Seat: 2, ShowSession: 1})
	svc.CreateTicket(context.Background(), 2, &dto.CreateTicketRequest{Row: 2, Seat: 1, ShowSession: 1})

	mine, err := svc.ListTickets(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 tickets for user 1, got %d", len(mine))
	}

	theirs, err := svc.ListTickets(context.Background(), 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(theirs) != 1 {
		t.Errorf("expected 1 ticket for user 2, got %d", len(theirs))
	}
}
