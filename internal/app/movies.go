package app

import (
	"errors"
	"net/http"

	"github.com/bookmymovie/booking-system/api"
	"github.com/bookmymovie/booking-system/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   make([]api.MovieSummary, 0, len(movies)),
		Metadata: toMetadataResponse(metadata),
	}

	for _, movie := range movies {
		resp.Movies = append(resp.Movies, toMovieSummary(movie))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieResponse{
		Movie: toMovieSummary(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	return api.MovieSummary{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Language:    movie.Language,
		ReleaseDate: movie.ReleaseDate.Format(api.DateFormat),
		Duration:    movie.Duration,
		PosterUrl:   movie.PosterUrl,
	}
}
