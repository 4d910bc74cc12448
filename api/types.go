// Package api defines the JSON wire types exchanged with clients. Seat sets travel
// as comma-joined label lists, dates as calendar days (YYYY-MM-DD, no time
// component), and amounts as decimal currency values.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateFormat = time.DateOnly

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type SeatConflictResponse struct {
	Message       string   `json:"message"`
	ConflictSeats []string `json:"conflict_seats"`
}

type CreateBookingRequest struct {
	UserID      int             `json:"user_id" validate:"required,gt=0"`
	MovieID     int             `json:"movie_id" validate:"required,gt=0"`
	HallID      int             `json:"hall_id" validate:"required,gt=0"`
	Slot        string          `json:"slot_selected" validate:"required,slot"`
	BookingDate string          `json:"booking_date" validate:"required,bookingdate"`
	Seats       string          `json:"seats_selected" validate:"required,seatlist"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
}

type BookingUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingMovie struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type BookingDetails struct {
	User          BookingUser     `json:"user"`
	Movie         BookingMovie    `json:"movie"`
	HallID        int             `json:"hall_id"`
	Slot          string          `json:"slot_selected"`
	BookingDate   string          `json:"booking_date"`
	Seats         string          `json:"seats_selected"`
	TotalSeats    int             `json:"total_seats"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	BookingStatus string          `json:"booking_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CreateBookingResponse struct {
	Success        bool           `json:"success"`
	BookingID      int            `json:"booking_id"`
	BookingDetails BookingDetails `json:"booking_details"`
}

type BookingResponse struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	MovieID       int             `json:"movie_id"`
	HallID        int             `json:"hall_id"`
	Slot          string          `json:"slot_selected"`
	BookingDate   string          `json:"booking_date"`
	Seats         string          `json:"seats_selected"`
	TotalSeats    int             `json:"total_seats"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	BookingStatus string          `json:"booking_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type UserBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Metadata Metadata          `json:"metadata"`
}

type GroupBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type CancelBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RecordPaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	PaymentStatus string `json:"payment_status"`
	RedirectUrl   string `json:"redirect_url,omitempty"`
}

type RevenueSummaryResponse struct {
	TotalBookings int             `json:"total_bookings"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type Seat struct {
	ID       int             `json:"id"`
	HallID   int             `json:"hall_id"`
	Label    string          `json:"seat_label"`
	SeatType string          `json:"seat_type"`
	Price    decimal.Decimal `json:"price"`
}

type AddSeatRequest struct {
	HallID   int             `json:"hall_id" validate:"required,gt=0"`
	Label    string          `json:"seat_label" validate:"required,max=8"`
	SeatType string          `json:"seat_type" validate:"omitempty,seattype"`
	Price    decimal.Decimal `json:"price" validate:"required,positiveamount"`
}

type AddSeatResponse struct {
	Success bool `json:"success"`
	Seat    Seat `json:"seat"`
}

type BulkCreateSeatsRequest struct {
	HallID   int             `json:"hall_id" validate:"required,gt=0"`
	Rows     int             `json:"rows" validate:"required,gt=0,lte=26"`
	Cols     int             `json:"cols" validate:"required,gt=0"`
	SeatType string          `json:"seat_type" validate:"omitempty,seattype"`
	Price    decimal.Decimal `json:"price" validate:"required,positiveamount"`
}

type BulkCreateSeatsResponse struct {
	Success    bool `json:"success"`
	TotalSeats int  `json:"total_seats"`
}

type UpdateSeatRequest struct {
	SeatType string          `json:"seat_type" validate:"required,seattype"`
	Price    decimal.Decimal `json:"price" validate:"required,positiveamount"`
}

type HallSeatsResponse struct {
	Seats []Seat `json:"seats"`
}

type AvailableSeatsResponse struct {
	AvailableSeats []Seat `json:"available_seats"`
}

type BookedSeatsResponse struct {
	Success     bool     `json:"success"`
	BookedSeats []string `json:"booked_seats"`
}

type AddShowRequest struct {
	MovieID  int    `json:"movie_id" validate:"required,gt=0"`
	HallID   int    `json:"hall_id" validate:"required,gt=0"`
	ShowDate string `json:"show_date" validate:"required,bookingdate"`
	Slot     string `json:"slot" validate:"required,slot"`
}

type AddShowResponse struct {
	Message string `json:"message"`
	ShowID  int    `json:"show_id"`
}

type Show struct {
	ID       int    `json:"id"`
	MovieID  int    `json:"movie_id"`
	HallID   int    `json:"hall_id"`
	ShowDate string `json:"show_date"`
	Slot     string `json:"slot"`
}

type ShowListResponse struct {
	Shows []Show `json:"shows"`
}

type ShowDatesResponse struct {
	Dates []string `json:"dates"`
}

type ShowSlotsResponse struct {
	Slots []string `json:"slots"`
}

type CreateHallRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	TotalSeats int    `json:"total_seats" validate:"required,gt=0"`
}

type Hall struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TotalSeats int    `json:"total_seats"`
}

type CreateHallResponse struct {
	Success bool `json:"success"`
	Hall    Hall `json:"hall"`
}

type HallListResponse struct {
	Halls []Hall `json:"halls"`
}

type MovieSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	ReleaseDate string `json:"release_date"`
	Duration    int    `json:"duration"`
	PosterUrl   string `json:"poster_url"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata Metadata       `json:"metadata"`
}

type MovieResponse struct {
	Movie MovieSummary `json:"movie"`
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}
