package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bookmymovie/booking-system/api"
	"github.com/bookmymovie/booking-system/internal/domain"
)

func (app *Application) AddSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AddSeatRequest

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

	seatType := domain.SeatType(input.SeatType)
	if input.SeatType == "" {
		seatType = domain.SeatTypeRegular
	}

	seat := &domain.Seat{
		HallID: input.HallID,
		Label:  input.Label,
		Type:   seatType,
		Price:  input.Price,
	}

	err = app.seatRepo.Insert(r.Context(), seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("hall %d does not exist", input.HallID))
		case errors.Is(err, domain.ErrHallCapacityReached):
			app.editConflictResponse(w, r, "Hall has reached its seat capacity")
		case errors.Is(err, domain.ErrDuplicateSeat):
			app.editConflictResponse(w, r, "Seat label already exists in this hall")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	logger.Info("added seat", "hall_id", seat.HallID, "seat_label", seat.Label)

	resp := api.AddSeatResponse{
		Success: true,
		Seat:    toSeatResponse(seat),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// BulkCreateSeats lays out a rectangular grid of seats: rows lettered A onwards,
// columns numbered from 1.
func (app *Application) BulkCreateSeats(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.BulkCreateSeatsRequest

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

	seatType := domain.SeatType(input.SeatType)
	if input.SeatType == "" {
		seatType = domain.SeatTypeRegular
	}

	seats := domain.GridSeats(input.HallID, input.Rows, input.Cols, seatType, input.Price)

	err = app.seatRepo.BulkInsert(r.Context(), seats)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("hall %d does not exist", input.HallID))
		case errors.Is(err, domain.ErrHallCapacityReached):
			app.editConflictResponse(w, r, "Hall does not have capacity for the requested layout")
		case errors.Is(err, domain.ErrDuplicateSeat):
			app.editConflictResponse(w, r, "Some seat labels already exist in this hall")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	logger.Info("bulk created seats", "hall_id", input.HallID, "total_seats", len(seats))

	resp := api.BulkCreateSeatsResponse{
		Success:    true,
		TotalSeats: len(seats),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatsByHall(w http.ResponseWriter, r *http.Request) {
	hallId, err := app.readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.hallRepo.GetById(r.Context(), hallId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	seats, err := app.seatRepo.GetByHall(r.Context(), hallId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallSeatsResponse{
		Seats: make([]api.Seat, 0, len(seats)),
	}

	for i := range seats {
		resp.Seats = append(resp.Seats, toSeatResponse(&seats[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetAvailableSeats lists the hall's seat catalog minus the seats held by confirmed
// bookings for the given showing.
func (app *Application) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	hallId, err := app.readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movieId, err := app.readIntQuery(r, "movie_id", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if movieId < 1 {
		app.badRequestResponse(w, r, errors.New("query parameter movie_id is required and must be positive"))
		return
	}

	date, err := app.readDateQuery(r, "booking_date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	slot := r.URL.Query().Get("slot")
	if !domain.IsValidSlot(slot) {
		app.badRequestResponse(w, r, errors.New("query parameter slot must be one of 11:00-14:00, 14:30-17:30, 18:00-21:00"))
		return
	}

	seats, err := app.seatRepo.GetByHall(r.Context(), hallId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	group := domain.Group{
		HallID:      hallId,
		MovieID:     movieId,
		BookingDate: date,
		Slot:        domain.Slot(slot),
	}

	occupied, err := app.bookingRepo.OccupiedSeats(r.Context(), group)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	occupiedSet := make(map[string]bool, len(occupied))
	for _, label := range occupied {
		occupiedSet[label] = true
	}

	resp := api.AvailableSeatsResponse{
		AvailableSeats: make([]api.Seat, 0, len(seats)),
	}

	for i := range seats {
		if occupiedSet[seats[i].Label] {
			continue
		}
		resp.AvailableSeats = append(resp.AvailableSeats, toSeatResponse(&seats[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeat(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "seatID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatResponse(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateSeat changes a seat's type and price. The label and hall cannot change
// because confirmed bookings reference the label.
func (app *Application) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	id, err := app.readIDParam(r, "seatID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateSeatRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	seat.Type = domain.SeatType(input.SeatType)
	seat.Price = input.Price

	err = app.seatRepo.Update(r.Context(), seat)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("updated seat", "seat_id", seat.ID, "seat_type", seat.Type)

	err = app.writeJSON(w, http.StatusOK, toSeatResponse(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	id, err := app.readIDParam(r, "seatID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.seatRepo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("deleted seat", "seat_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func toSeatResponse(seat *domain.Seat) api.Seat {
	return api.Seat{
		ID:       seat.ID,
		HallID:   seat.HallID,
		Label:    seat.Label,
		SeatType: string(seat.Type),
		Price:    seat.Price,
	}
}
