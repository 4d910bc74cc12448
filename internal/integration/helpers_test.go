package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"request_id": {},
	"created_at": {},
	"updated_at": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		cleanValue(m[k])
	}
}

func cleanValue(v any) {
	switch value := v.(type) {
	case map[string]any:
		cleanMap(value)
	case []any:
		for _, item := range value {
			cleanValue(item)
		}
	}
}

func executeSQL(t testing.TB, db *pgxpool.Pool, query string, args ...any) {
	_, err := db.Exec(context.Background(), query, args...)
	require.NoError(t, err)
}

// seedCatalog loads the fixed test catalog. It is idempotent so suites can call it
// from every test without tracking whether a previous test already did.
func seedCatalog(t testing.TB, app *TestApp) {
	executeSQL(t, app.DB, "TRUNCATE booking_seats, bookings, shows, seats, halls, users, movies RESTART IDENTITY CASCADE")

	executeSQL(t, app.DB, `
		INSERT INTO movies (title, description, language, release_date, duration, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, TestMovieTitle, TestMovieDescription, TestMovieLanguage, TestMovieReleaseDate, TestMovieDuration, TestMoviePosterUrl)

	executeSQL(t, app.DB, `
		INSERT INTO users (name, email)
		VALUES ($1, $2), ($3, $4)
	`, TestUserName, TestUserEmail, TestSecondUserName, TestSecondUserEmail)

	executeSQL(t, app.DB, `
		INSERT INTO halls (name, total_seats)
		VALUES ($1, $2)
	`, TestHallName, TestHallCapacity)

	executeSQL(t, app.DB, `
		INSERT INTO seats (hall_id, seat_label, seat_type, price)
		SELECT 1, chr(64 + row) || col, 'REGULAR', 10.00
		FROM generate_series(1, 5) AS row, generate_series(1, 5) AS col
	`)

	executeSQL(t, app.DB, `
		INSERT INTO shows (movie_id, hall_id, show_date, slot)
		VALUES (1, 1, $1, $2)
	`, TestBookingDate, TestSlot)
}
