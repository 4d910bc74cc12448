package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicateShow       = errors.New("hall already has a show in the selected slot")
	ErrDuplicateSeat       = errors.New("seat label already exists in this hall")
	ErrHallCapacityReached = errors.New("hall seat capacity reached")
)

// SeatConflictError reports the exact requested seats that are already held by a
// confirmed booking in the same group, so the client can let the user pick differently.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked: %s", strings.Join(e.Seats, ","))
}
