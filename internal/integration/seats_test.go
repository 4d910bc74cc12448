package integration_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SeatTestSuite struct {
	BaseSuite
}

func TestSeatSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(SeatTestSuite))
}

func (s *SeatTestSuite) TestSeatCatalog() {
	scenarios := []Scenario{
		{
			Name:           "creates a hall",
			Method:         "POST",
			URL:            "/halls",
			Body:           strings.NewReader(`{"name": "Small Hall", "total_seats": 4}`),
			ExpectedStatus: http.StatusCreated,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				seedCatalog(t, app)
			},
			ExpectedResponse: `{
				"success": true,
				"hall": {"id": 2, "name": "Small Hall", "total_seats": 4}
			}`,
		},
		{
			Name:           "lays out a seat grid within capacity",
			Method:         "POST",
			URL:            "/seats/bulk",
			Body:           strings.NewReader(`{"hall_id": 2, "rows": 1, "cols": 3, "seat_type": "PREMIUM", "price": 15.00}`),
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"success": true,
				"total_seats": 3
			}`,
		},
		{
			Name:           "adds a single seat up to capacity",
			Method:         "POST",
			URL:            "/seats",
			Body:           strings.NewReader(`{"hall_id": 2, "seat_label": "B1", "price": 10.00}`),
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name:           "rejects a seat beyond hall capacity",
			Method:         "POST",
			URL:            "/seats",
			Body:           strings.NewReader(`{"hall_id": 2, "seat_label": "B2", "price": 10.00}`),
			ExpectedStatus: http.StatusConflict,
			ExpectedResponse: `{
				"message": "Hall has reached its seat capacity"
			}`,
		},
		{
			Name:           "rejects a duplicate seat label",
			Method:         "POST",
			URL:            "/seats",
			Body:           strings.NewReader(`{"hall_id": 1, "seat_label": "A1", "price": 10.00}`),
			ExpectedStatus: http.StatusConflict,
			ExpectedResponse: `{
				"message": "Seat label already exists in this hall"
			}`,
		},
		{
			Name:           "rejects seats for an unknown hall",
			Method:         "POST",
			URL:            "/seats",
			Body:           strings.NewReader(`{"hall_id": 42, "seat_label": "A1", "price": 10.00}`),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "hall 42 does not exist"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *SeatTestSuite) TestDeleteSeat() {
	seedCatalog(s.T(), s.app)

	req, err := http.NewRequest(http.MethodDelete, s.server.URL+"/seats/1", nil)
	require.NoError(s.T(), err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer res.Body.Close()

	s.Equal(http.StatusNoContent, res.StatusCode)

	var count int
	err = s.app.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM seats WHERE id = 1").Scan(&count)
	require.NoError(s.T(), err)
	s.Equal(0, count)
}
