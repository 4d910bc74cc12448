package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bookmymovie/booking-system/api"
	"github.com/bookmymovie/booking-system/internal/domain"
)

func (app *Application) AddShow(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AddShowRequest

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

	_, err = app.movieRepo.GetById(r.Context(), input.MovieID)
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

	showDate, err := time.Parse(time.DateOnly, input.ShowDate)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show := &domain.Show{
		MovieID:  input.MovieID,
		HallID:   input.HallID,
		ShowDate: showDate,
		Slot:     domain.Slot(input.Slot),
	}

	err = app.showRepo.Create(r.Context(), show)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateShow) {
			app.editConflictResponse(w, r, "Hall already has a show scheduled in this slot")
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("added show", "show_id", show.ID, "hall_id", show.HallID, "slot", show.Slot)

	resp := api.AddShowResponse{
		Message: "Show added successfully",
		ShowID:  show.ID,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	filters, err := app.readShowFilters(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shows, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Shows: make([]api.Show, 0, len(shows)),
	}

	for _, show := range shows {
		resp.Shows = append(resp.Shows, api.Show{
			ID:       show.ID,
			MovieID:  show.MovieID,
			HallID:   show.HallID,
			ShowDate: show.ShowDate.Format(api.DateFormat),
			Slot:     string(show.Slot),
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetShowDates lists the distinct dates on which shows matching the filters are
// scheduled, in ascending order.
func (app *Application) GetShowDates(w http.ResponseWriter, r *http.Request) {
	filters, err := app.readShowFilters(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shows, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	seen := make(map[string]bool)
	resp := api.ShowDatesResponse{
		Dates: make([]string, 0, len(shows)),
	}

	for _, show := range shows {
		date := show.ShowDate.Format(api.DateFormat)
		if seen[date] {
			continue
		}
		seen[date] = true
		resp.Dates = append(resp.Dates, date)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetShowSlots lists the distinct slots of shows matching the filters. Combined
// with a show_date filter this answers "what showtimes are there on that day".
func (app *Application) GetShowSlots(w http.ResponseWriter, r *http.Request) {
	filters, err := app.readShowFilters(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shows, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	seen := make(map[domain.Slot]bool)
	resp := api.ShowSlotsResponse{
		Slots: make([]string, 0, len(shows)),
	}

	for _, show := range shows {
		if seen[show.Slot] {
			continue
		}
		seen[show.Slot] = true
		resp.Slots = append(resp.Slots, string(show.Slot))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readShowFilters(r *http.Request) (domain.ShowFilters, error) {
	var filters domain.ShowFilters

	if s := r.URL.Query().Get("movie_id"); s != "" {
		movieId, err := app.readIntQuery(r, "movie_id", 0)
		if err != nil {
			return filters, err
		}
		filters.MovieID = &movieId
	}

	if s := r.URL.Query().Get("hall_id"); s != "" {
		hallId, err := app.readIntQuery(r, "hall_id", 0)
		if err != nil {
			return filters, err
		}
		filters.HallID = &hallId
	}

	if s := r.URL.Query().Get("show_date"); s != "" {
		date, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filters, errors.New("query parameter show_date must be a date in YYYY-MM-DD format")
		}
		filters.Date = &date
	}

	return filters, nil
}
