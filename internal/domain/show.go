package domain

import (
	"context"
	"time"
)

// Slot is one of the three fixed screening windows per day.
type Slot string

const (
	SlotMorning Slot = "11:00-14:00"
	SlotMatinee Slot = "14:30-17:30"
	SlotEvening Slot = "18:00-21:00"
)

func Slots() []Slot {
	return []Slot{SlotMorning, SlotMatinee, SlotEvening}
}

func IsValidSlot(s string) bool {
	switch Slot(s) {
	case SlotMorning, SlotMatinee, SlotEvening:
		return true
	}

	return false
}

// Show schedules a movie in a hall for one slot on one date. At most one show may
// exist per (hall, date, slot), independent of which movie it screens.
type Show struct {
	ID        int
	MovieID   int
	HallID    int
	ShowDate  time.Time
	Slot      Slot
	CreatedAt time.Time
}

type ShowFilters struct {
	MovieID *int
	HallID  *int
	Date    *time.Time
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetAll(ctx context.Context, filters ShowFilters) ([]Show, error)
}
