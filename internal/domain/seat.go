package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SeatType string

const (
	SeatTypeRegular  SeatType = "REGULAR"
	SeatTypePremium  SeatType = "PREMIUM"
	SeatTypeRecliner SeatType = "RECLINER"
)

func IsValidSeatType(s string) bool {
	switch SeatType(s) {
	case SeatTypeRegular, SeatTypePremium, SeatTypeRecliner:
		return true
	}

	return false
}

// Seat belongs to exactly one hall. Its label (row letter + column number, e.g. "A12")
// is unique within the hall and is what bookings reference.
type Seat struct {
	ID        int
	HallID    int
	Label     string
	Type      SeatType
	Price     decimal.Decimal
	CreatedAt time.Time
}

// GridSeats generates the rectangular seat layout used by bulk creation: rows are
// lettered A, B, C, ... and columns numbered 1..cols.
func GridSeats(hallID, rows, cols int, seatType SeatType, price decimal.Decimal) []Seat {
	seats := make([]Seat, 0, rows*cols)

	for i := 0; i < rows; i++ {
		rowLetter := rune('A' + i)
		for j := 1; j <= cols; j++ {
			seats = append(seats, Seat{
				HallID: hallID,
				Label:  fmt.Sprintf("%c%d", rowLetter, j),
				Type:   seatType,
				Price:  price,
			})
		}
	}

	return seats
}

type SeatRepository interface {
	// Insert rejects with ErrHallCapacityReached once the hall's seat count has
	// reached its declared capacity, and with ErrDuplicateSeat on a label clash.
	Insert(ctx context.Context, seat *Seat) error
	BulkInsert(ctx context.Context, seats []Seat) error
	GetByHall(ctx context.Context, hallID int) ([]Seat, error)
	GetById(ctx context.Context, id int) (*Seat, error)
	Update(ctx context.Context, seat *Seat) error
	Delete(ctx context.Context, id int) error
}
