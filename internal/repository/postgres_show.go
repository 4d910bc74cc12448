package repository

import (
	"context"
	"errors"

	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// Create relies on the UNIQUE (hall_id, show_date, slot) constraint to reject a
// second show in the same hall and slot on the same day, whatever the movie.
func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, hall_id, show_date, slot)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(ctx, query, show.MovieID, show.HallID, show.ShowDate, show.Slot).
		Scan(&show.ID, &show.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateShow
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) GetAll(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, error) {
	query := `
		SELECT id, movie_id, hall_id, show_date, slot, created_at
		FROM shows
		WHERE ($1::int IS NULL OR movie_id = $1)
		AND ($2::int IS NULL OR hall_id = $2)
		AND ($3::date IS NULL OR show_date = $3)
		ORDER BY show_date, slot
	`

	rows, err := p.db.Query(ctx, query, filters.MovieID, filters.HallID, filters.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var show domain.Show

		err = rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.HallID,
			&show.ShowDate,
			&show.Slot,
			&show.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}
