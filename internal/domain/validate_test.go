package domain

import (
	"errors"
	"testing"
)

func TestValidateDomeGeometry(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		seatsInRow int
		wantFields []string
	}{
		{name: "minimum geometry", rows: 1, seatsInRow: 1},
		{name: "maximum geometry", rows: 50, seatsInRow: 630},
		{name: "typical geometry", rows: 20, seatsInRow: 24},
		{name: "zero rows", rows: 0, seatsInRow: 10, wantFields: []string{"rows"}},
		{name: "rows above limit", rows: 51, seatsInRow: 10, wantFields: []string{"rows"}},
		{name: "zero seats", rows: 10, seatsInRow: 0, wantFields: []string{"seats_in_row"}},
		{name: "seats above limit", rows: 10, seatsInRow: 631, wantFields: []string{"seats_in_row"}},
		{name: "both out of range", rows: -1, seatsInRow: 1000, wantFields: []string{"rows", "seats_in_row"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomeGeometry(tt.rows, tt.seatsInRow)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			fe, ok := AsFieldErrors(err)
			if !ok {
				t.Fatalf("expected field errors, got %v", err)
			}
			if len(fe) != len(tt.wantFields) {
				t.Errorf("expected %d invalid fields, got %d (%v)", len(tt.wantFields), len(fe), fe)
			}
			for _, field := range tt.wantFields {
				if len(fe[field]) == 0 {
					t.Errorf("expected error for field %q, got %v", field, fe)
				}
			}
		})
	}
}

func TestValidateTicketSeat(t *testing.T) {
	dome := &PlanetariumDome{Rows: 10, SeatsInRow: 15}

	tests := []struct {
		name       string
		row        int
		seat       int
		wantFields []string
	}{
		{name: "first seat", row: 1, seat: 1},
		{name: "last seat", row: 10, seat: 15},
		{name: "row zero", row: 0, seat: 5, wantFields: []string{"row"}},
		{name: "row beyond dome", row: 11, seat: 5, wantFields: []string{"row"}},
		{name: "seat zero", row: 5, seat: 0, wantFields: []string{"seat"}},
		{name: "seat beyond dome", row: 5, seat: 16, wantFields: []string{"seat"}},
		{name: "both invalid", row: 99, seat: 99, wantFields: []string{"row", "seat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTicketSeat(tt.row, tt.seat, dome)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			fe, ok := AsFieldErrors(err)
			if !ok {
				t.Fatalf("expected field errors, got %v", err)
			}
			for _, field := range tt.wantFields {
				if len(fe[field]) == 0 {
					t.Errorf("expected error for field %q, got %v", field, fe)
				}
			}
		})
	}
}

func TestFieldErrorsAsError(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("name", "name is required")
	fe.Add("name", "name is too short")
	fe.Add("rows", "rows must be from 1 to 50")

	var err error = fe
	got, ok := AsFieldErrors(err)
	if !ok {
		t.Fatal("expected AsFieldErrors to match")
	}
	if len(got["name"]) != 2 {
		t.Errorf("expected 2 messages for name, got %d", len(got["name"]))
	}

	// Message lists fields in a stable order
	want := "validation failed: name: name is required; name is too short, rows: rows must be from 1 to 50"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsNotFoundError(t *testing.T) {
	for _, err := range []error{
		ErrThemeNotFound, ErrShowNotFound, ErrDomeNotFound,
		ErrSessionNotFound, ErrTicketNotFound, ErrUserNotFound,
	} {
		if !IsNotFoundError(err) {
			t.Errorf("expected %v to be a not found error", err)
		}
	}
	if IsNotFoundError(errors.New("boom")) {
		t.Error("unexpected not found classification")
	}
	if IsNotFoundError(ErrSeatTaken) {
		t.Error("conflict classified as not found")
	}
}

func TestIsConflictError(t *testing.T) {
	for _, err := range []error{
		ErrThemeNameTaken, ErrShowTitleTaken, ErrDomeNameTaken, ErrSeatTaken, ErrUserExists,
	} {
		if !IsConflictError(err) {
			t.Errorf("expected %v to be a conflict error", err)
		}
	}
	if IsConflictError(ErrShowNotFound) {
		t.Error("not found classified as conflict")
	}
}
