package repository

import (
	"context"
	"errors"

	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

// Insert adds one seat to a hall's catalog. The hall row is locked for the duration
// of the capacity check so concurrent inserts cannot push the count past the hall's
// declared total.
func (p *PostgresSeatRepository) Insert(ctx context.Context, seat *domain.Seat) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		free, err := remainingCapacity(ctx, tx, seat.HallID)
		if err != nil {
			return err
		}

		if free < 1 {
			return domain.ErrHallCapacityReached
		}

		query := `
			INSERT INTO seats (hall_id, seat_label, seat_type, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query, seat.HallID, seat.Label, seat.Type, seat.Price).
			Scan(&seat.ID, &seat.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateSeat
			}

			return err
		}

		return nil
	})
}

// BulkInsert creates a rectangular grid of seats in one COPY, applying the same
// capacity guard as Insert. All seats must belong to the same hall.
func (p *PostgresSeatRepository) BulkInsert(ctx context.Context, seats []domain.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	hallID := seats[0].HallID

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		free, err := remainingCapacity(ctx, tx, hallID)
		if err != nil {
			return err
		}

		if free < len(seats) {
			return domain.ErrHallCapacityReached
		}

		rows := make([][]any, 0, len(seats))
		for _, seat := range seats {
			rows = append(rows, []any{seat.HallID, seat.Label, seat.Type, seat.Price})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"hall_id", "seat_label", "seat_type", "price"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateSeat
			}

			return err
		}

		return nil
	})
}

// remainingCapacity locks the hall row and returns how many more seats it can hold.
func remainingCapacity(ctx context.Context, tx pgx.Tx, hallID int) (int, error) {
	var capacity int

	err := tx.QueryRow(ctx, `SELECT total_seats FROM halls WHERE id = $1 FOR UPDATE`, hallID).
		Scan(&capacity)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRecordNotFound
		}

		return 0, err
	}

	var created int

	err = tx.QueryRow(ctx, `SELECT COUNT(id) FROM seats WHERE hall_id = $1`, hallID).Scan(&created)
	if err != nil {
		return 0, err
	}

	return capacity - created, nil
}

func (p *PostgresSeatRepository) GetByHall(ctx context.Context, hallID int) ([]domain.Seat, error) {
	query := `
		SELECT id, hall_id, seat_label, seat_type, price, created_at
		FROM seats
		WHERE hall_id = $1
		ORDER BY seat_label
	`

	rows, err := p.db.Query(ctx, query, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.Label,
			&seat.Type,
			&seat.Price,
			&seat.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) GetById(ctx context.Context, id int) (*domain.Seat, error) {
	query := `
		SELECT id, hall_id, seat_label, seat_type, price, created_at
		FROM seats
		WHERE id = $1
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.Label,
		&seat.Type,
		&seat.Price,
		&seat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &seat, nil
}

// Update changes a seat's type and price. The label and hall are fixed after
// creation because existing bookings reference the label.
func (p *PostgresSeatRepository) Update(ctx context.Context, seat *domain.Seat) error {
	query := `
		UPDATE seats
		SET seat_type = $2, price = $3
		WHERE id = $1
	`

	tag, err := p.db.Exec(ctx, query, seat.ID, seat.Type, seat.Price)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresSeatRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
