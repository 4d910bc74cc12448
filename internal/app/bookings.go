package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookmymovie/booking-system/api"
	"github.com/bookmymovie/booking-system/internal/domain"
)

// CreateBooking is the conflict-resolution entry point. The requested seat set is
// checked against the union of seats held by confirmed bookings in the same
// (hall, movie, date, slot) group; any overlap rejects the whole request and names
// the clashing seats.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.badRequestResponse(w, r, fmt.Errorf("user %d does not exist", input.UserID))
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.badRequestResponse(w, r, fmt.Errorf("movie %d does not exist", input.MovieID))
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	_, err = app.hallRepo.GetById(r.Context(), input.HallID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.badRequestResponse(w, r, fmt.Errorf("hall %d does not exist", input.HallID))
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	bookingDate, err := time.Parse(time.DateOnly, input.BookingDate)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats := domain.ParseSeatList(input.Seats)

	booking := &domain.Booking{
		UserID:        input.UserID,
		MovieID:       input.MovieID,
		HallID:        input.HallID,
		Slot:          domain.Slot(input.Slot),
		BookingDate:   bookingDate,
		Seats:         seats,
		TotalSeats:    len(seats),
		TotalAmount:   input.TotalAmount,
		PaymentStatus: domain.PaymentStatusPending,
		BookingStatus: domain.BookingStatusConfirmed,
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		var conflictErr *domain.SeatConflictError
		if errors.As(err, &conflictErr) {
			logger.Info("rejected booking with seat conflict",
				"group", booking.Group().Key(),
				"conflict_seats", conflictErr.Seats,
			)
			app.seatConflictResponse(w, r, conflictErr)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("created booking", "booking_id", booking.ID, "group", booking.Group().Key())

	app.logAmountMismatch(r, booking)
	app.sendBookingConfirmation(r, user, movie, booking)

	resp := api.CreateBookingResponse{
		Success:   true,
		BookingID: booking.ID,
		BookingDetails: api.BookingDetails{
			User: api.BookingUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
			Movie: api.BookingMovie{
				ID:    movie.ID,
				Title: movie.Title,
			},
			HallID:        booking.HallID,
			Slot:          string(booking.Slot),
			BookingDate:   booking.BookingDate.Format(api.DateFormat),
			Seats:         domain.JoinSeatList(booking.Seats),
			TotalSeats:    booking.TotalSeats,
			TotalAmount:   booking.TotalAmount,
			PaymentStatus: string(booking.PaymentStatus),
			BookingStatus: string(booking.BookingStatus),
			CreatedAt:     booking.CreatedAt,
		},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// logAmountMismatch compares the submitted total against the catalog price of the
// selected seats. The submitted amount is authoritative; a mismatch is logged but
// never rejects the booking.
func (app *Application) logAmountMismatch(r *http.Request, booking *domain.Booking) {
	logger := app.contextGetLogger(r)

	catalog, err := app.seatRepo.GetByHall(r.Context(), booking.HallID)
	if err != nil {
		logger.Error("failed to load seat catalog for amount check", "hall_id", booking.HallID, "error", err)
		return
	}

	prices := make(map[string]decimal.Decimal, len(catalog))
	for _, seat := range catalog {
		prices[seat.Label] = seat.Price
	}

	expected := decimal.Zero

	for _, label := range booking.Seats {
		price, ok := prices[label]
		if !ok {
			// Seat is not in the catalog; there is no price to compare against.
			return
		}
		expected = expected.Add(price)
	}

	if !expected.Equal(booking.TotalAmount) {
		logger.Warn("booking amount differs from seat catalog pricing",
			"booking_id", booking.ID,
			"submitted", booking.TotalAmount,
			"expected", expected,
		)
	}
}

// sendBookingConfirmation delivers the confirmation email. Delivery failures are
// logged and never unwind the booking.
func (app *Application) sendBookingConfirmation(r *http.Request, user *domain.User, movie *domain.Movie, booking *domain.Booking) {
	logger := app.contextGetLogger(r)

	data := map[string]any{
		"Name":        user.Name,
		"MovieTitle":  movie.Title,
		"Seats":       domain.JoinSeatList(booking.Seats),
		"TotalSeats":  booking.TotalSeats,
		"TotalAmount": booking.TotalAmount,
		"BookingDate": booking.BookingDate.Format(api.DateFormat),
		"Slot":        string(booking.Slot),
	}

	err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
	if err != nil {
		logger.Error("failed to send booking confirmation email", "booking_id", booking.ID, "error", err)
	}
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsByUser(w http.ResponseWriter, r *http.Request) {
	userId, err := app.readIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookings, metadata, err := app.bookingRepo.GetByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: make([]api.BookingResponse, 0, len(bookings)),
		Metadata: toMetadataResponse(metadata),
	}

	for i := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&bookings[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsByGroup(w http.ResponseWriter, r *http.Request) {
	group, err := app.readGroupQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookings, err := app.bookingRepo.GetByGroup(r.Context(), group)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.GroupBookingsResponse{
		Bookings: make([]api.BookingResponse, 0, len(bookings)),
	}

	for i := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&bookings[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CheckSeatAvailability returns the union of seats held by confirmed bookings in the
// group, which is exactly the set CreateBooking checks new requests against.
func (app *Application) CheckSeatAvailability(w http.ResponseWriter, r *http.Request) {
	group, err := app.readGroupQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookedSeats, err := app.bookingRepo.OccupiedSeats(r.Context(), group)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookedSeatsResponse{
		Success:     true,
		BookedSeats: bookedSeats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBooking frees the booking's seats for immediate rebooking. Cancelling an
// already cancelled booking is a no-op success.
func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	id, err := app.readIDParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Cancel(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("cancelled booking", "booking_id", id)

	resp := api.CancelBookingResponse{
		Success: true,
		Message: "Booking cancelled successfully",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// RecordPayment charges the booking through the configured provider and records the
// outcome. Payment never re-checks seat occupancy.
func (app *Application) RecordPayment(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	id, err := app.readIDParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	if booking.BookingStatus == domain.BookingStatusCancelled {
		app.editConflictResponse(w, r, "Cannot record a payment for a cancelled booking")
		return
	}

	if booking.PaymentStatus == domain.PaymentStatusSuccess {
		app.editConflictResponse(w, r, "Payment has already been recorded for this booking")
		return
	}

	user, err := app.userRepo.GetById(r.Context(), booking.UserID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	transaction, err := app.paymentProvider.Charge(booking, user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.bookingRepo.UpdatePaymentStatus(r.Context(), booking.ID, transaction.Status)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("recorded payment",
		"booking_id", booking.ID,
		"transaction_id", transaction.ID,
		"payment_status", transaction.Status,
	)

	resp := api.RecordPaymentResponse{
		TransactionID: transaction.ID,
		PaymentStatus: string(transaction.Status),
		RedirectUrl:   transaction.RedirectUrl,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRevenueSummary(w http.ResponseWriter, r *http.Request) {
	from, err := app.readDateQuery(r, "from")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to, err := app.readDateQuery(r, "to")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if to.Before(from) {
		app.badRequestResponse(w, r, errors.New("query parameter to must not be before from"))
		return
	}

	summary, err := app.bookingRepo.RevenueSummary(r.Context(), from, to)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RevenueSummaryResponse{
		TotalBookings: summary.TotalBookings,
		TotalRevenue:  summary.TotalRevenue,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readGroupQuery(r *http.Request) (domain.Group, error) {
	hallId, err := app.readIntQuery(r, "hall_id", 0)
	if err != nil {
		return domain.Group{}, err
	}

	movieId, err := app.readIntQuery(r, "movie_id", 0)
	if err != nil {
		return domain.Group{}, err
	}

	if hallId < 1 || movieId < 1 {
		return domain.Group{}, errors.New("query parameters hall_id and movie_id are required and must be positive")
	}

	date, err := app.readDateQuery(r, "booking_date")
	if err != nil {
		return domain.Group{}, err
	}

	slot := r.URL.Query().Get("slot")
	if !domain.IsValidSlot(slot) {
		return domain.Group{}, errors.New("query parameter slot must be one of 11:00-14:00, 14:30-17:30, 18:00-21:00")
	}

	return domain.Group{
		HallID:      hallId,
		MovieID:     movieId,
		BookingDate: date,
		Slot:        domain.Slot(slot),
	}, nil
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		ID:            booking.ID,
		UserID:        booking.UserID,
		MovieID:       booking.MovieID,
		HallID:        booking.HallID,
		Slot:          string(booking.Slot),
		BookingDate:   booking.BookingDate.Format(api.DateFormat),
		Seats:         domain.JoinSeatList(booking.Seats),
		TotalSeats:    booking.TotalSeats,
		TotalAmount:   booking.TotalAmount,
		PaymentStatus: string(booking.PaymentStatus),
		BookingStatus: string(booking.BookingStatus),
		CreatedAt:     booking.CreatedAt,
	}
}

func toMetadataResponse(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
