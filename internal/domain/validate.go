package domain

import "fmt"

// Dome geometry limits
const (
	MinRows       = 1
	MaxRows       = 50
	MinSeatsInRow = 1
	MaxSeatsInRow = 630
)

// ValidateDomeGeometry checks the seating grid of a dome. It is the single
// chokepoint for geometry rules: every write path must call it before
// persisting a dome.
func ValidateDomeGeometry(rows, seatsInRow int) error {
	fe := FieldErrors{}
	if rows < MinRows || rows > MaxRows {
		fe.Add("rows", fmt.Sprintf("rows must be from %d to %d", MinRows, MaxRows))
	}
	if seatsInRow < MinSeatsInRow || seatsInRow > MaxSeatsInRow {
		fe.Add("seats_in_row", fmt.Sprintf("seats_in_row must be from %d to %d", MinSeatsInRow, MaxSeatsInRow))
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// ValidateTicketSeat checks that a seat lies within the geometry of the dome
// hosting the session. Called before every ticket write.
func ValidateTicketSeat(row, seat int, dome *PlanetariumDome) error {
	fe := FieldErrors{}
	if row < 1 || row > dome.Rows {
		fe.Add("row", fmt.Sprintf("the row must be from 1 to %d", dome.Rows))
	}
	if seat < 1 || seat > dome.SeatsInRow {
		fe.Add("seat", fmt.Sprintf("the seat must be from 1 to %d", dome.SeatsInRow))
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}
