package app

import (
	"net/http"

	"github.com/bookmymovie/booking-system/api"
	"github.com/bookmymovie/booking-system/internal/domain"
)

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateHallRequest

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

	hall := &domain.Hall{
		Name:       input.Name,
		TotalSeats: input.TotalSeats,
	}

	err = app.hallRepo.Create(r.Context(), hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("created hall", "hall_id", hall.ID, "total_seats", hall.TotalSeats)

	resp := api.CreateHallResponse{
		Success: true,
		Hall:    toHallResponse(hall),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallListResponse{
		Halls: make([]api.Hall, 0, len(halls)),
	}

	for i := range halls {
		resp.Halls = append(resp.Halls, toHallResponse(&halls[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toHallResponse(hall *domain.Hall) api.Hall {
	return api.Hall{
		ID:         hall.ID,
		Name:       hall.Name,
		TotalSeats: hall.TotalSeats,
	}
}
