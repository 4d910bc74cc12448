package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is an immutable snapshot of a confirmed seat reservation. After creation
// only PaymentStatus and BookingStatus ever change; seats, date, slot, hall and movie
// are fixed for the lifetime of the record.
type Booking struct {
	ID            int
	UserID        int
	MovieID       int
	HallID        int
	Slot          Slot
	BookingDate   time.Time
	Seats         []string
	TotalSeats    int
	TotalAmount   decimal.Decimal
	PaymentStatus PaymentStatus
	BookingStatus BookingStatus
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Group identifies a single showing's seat-occupancy scope. All conflict checks and
// availability reads are keyed on it.
type Group struct {
	HallID      int
	MovieID     int
	BookingDate time.Time
	Slot        Slot
}

// Key returns a stable string form of the group, used to derive the advisory lock
// that serializes concurrent submissions targeting the same showing.
func (g Group) Key() string {
	return fmt.Sprintf("%d:%d:%s:%s", g.HallID, g.MovieID, g.BookingDate.Format(time.DateOnly), g.Slot)
}

func (b *Booking) Group() Group {
	return Group{
		HallID:      b.HallID,
		MovieID:     b.MovieID,
		BookingDate: b.BookingDate,
		Slot:        b.Slot,
	}
}

// ParseSeatList splits a comma-joined seat label list into an ordered set.
// Insertion order is preserved for display; duplicates within the request collapse
// to the first occurrence.
func ParseSeatList(s string) []string {
	seen := make(map[string]bool)
	seats := make([]string, 0)

	for _, label := range strings.Split(s, ",") {
		label = strings.TrimSpace(label)
		if label == "" || seen[label] {
			continue
		}

		seen[label] = true
		seats = append(seats, label)
	}

	return seats
}

// JoinSeatList is the inverse of ParseSeatList and produces the wire/ledger form.
func JoinSeatList(seats []string) string {
	return strings.Join(seats, ",")
}

// IntersectSeats returns the members of requested that appear in occupied,
// in the requested order.
func IntersectSeats(requested, occupied []string) []string {
	occupiedSet := make(map[string]bool, len(occupied))
	for _, label := range occupied {
		occupiedSet[label] = true
	}

	var conflict []string
	for _, label := range requested {
		if occupiedSet[label] {
			conflict = append(conflict, label)
		}
	}

	return conflict
}

type RevenueSummary struct {
	TotalBookings int
	TotalRevenue  decimal.Decimal
}

type BookingRepository interface {
	// Create runs the conflict check and the insert in one serialized transaction.
	// It returns a *SeatConflictError when any requested seat is already held by a
	// confirmed booking in the same group.
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByUserId(ctx context.Context, userId int, pagination Pagination) ([]Booking, *Metadata, error)
	GetByGroup(ctx context.Context, group Group) ([]Booking, error)
	// OccupiedSeats returns the union of seat labels across all CONFIRMED bookings
	// in the group. The resolver and every availability read share this projection.
	OccupiedSeats(ctx context.Context, group Group) ([]string, error)
	Cancel(ctx context.Context, id int) error
	UpdatePaymentStatus(ctx context.Context, id int, status PaymentStatus) error
	RevenueSummary(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
}
