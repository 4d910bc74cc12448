package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ShowTestSuite struct {
	BaseSuite
}

func TestShowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(ShowTestSuite))
}

func (s *ShowTestSuite) TestShows() {
	scenarios := []Scenario{
		{
			Name:           "schedules a show in a free slot",
			Method:         "POST",
			URL:            "/shows",
			Body:           strings.NewReader(`{"movie_id": 1, "hall_id": 1, "show_date": "2026-10-02", "slot": "14:30-17:30"}`),
			ExpectedStatus: http.StatusCreated,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCatalog(t, app)
			},
			ExpectedResponse: `{
				"message": "Show added successfully",
				"show_id": 2
			}`,
		},
		{
			Name:           "rejects a second show in the same hall, date and slot",
			Method:         "POST",
			URL:            "/shows",
			Body:           strings.NewReader(`{"movie_id": 1, "hall_id": 1, "show_date": "2026-10-02", "slot": "14:30-17:30"}`),
			ExpectedStatus: http.StatusConflict,
			ExpectedResponse: `{
				"message": "Hall already has a show scheduled in this slot"
			}`,
		},
		{
			Name:           "rejects a show for an unknown movie",
			Method:         "POST",
			URL:            "/shows",
			Body:           strings.NewReader(`{"movie_id": 42, "hall_id": 1, "show_date": "2026-10-02", "slot": "18:00-21:00"}`),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "movie 42 does not exist"
			}`,
		},
		{
			Name:           "lists shows filtered by hall and date",
			Method:         "GET",
			URL:            "/shows?hall_id=1&show_date=2026-10-02",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"shows": [
					{"id": 2, "movie_id": 1, "hall_id": 1, "show_date": "2026-10-02", "slot": "14:30-17:30"}
				]
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
