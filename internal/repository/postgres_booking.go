package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// errSeatRowExists signals that the booking_seats unique constraint fired inside the
// Create transaction. The occupied set is re-read outside the aborted transaction to
// name the overlap.
var errSeatRowExists = errors.New("seat junction row already exists")

// Create performs the conflict check and the insert atomically. Submissions for the
// same (hall, movie, date, slot) group are serialized by a transaction-scoped
// advisory lock on the group key, so no two transactions can both observe a seat as
// free. The booking_seats junction carries a unique constraint on
// (hall_id, movie_id, booking_date, slot, seat_label) as a second, database-enforced
// line of defense.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := p.create(ctx, booking)

	if errors.Is(err, errSeatRowExists) {
		occupied, readErr := occupiedSeatLabels(ctx, p.db, booking.Group())
		if readErr != nil {
			return readErr
		}

		return &domain.SeatConflictError{Seats: conflictSeats(booking.Seats, occupied)}
	}

	return err
}

func (p *PostgresBookingRepository) create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, booking.Group().Key())
		if err != nil {
			return err
		}

		occupied, err := occupiedSeatLabels(ctx, tx, booking.Group())
		if err != nil {
			return err
		}

		conflict := domain.IntersectSeats(booking.Seats, occupied)
		if len(conflict) > 0 {
			return &domain.SeatConflictError{Seats: conflict}
		}

		booking.TotalSeats = len(booking.Seats)
		booking.PaymentStatus = domain.PaymentStatusPending
		booking.BookingStatus = domain.BookingStatusConfirmed

		query := `
			INSERT INTO bookings
				(user_id, movie_id, hall_id, slot, booking_date, seats_selected, total_seats, total_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			booking.UserID,
			booking.MovieID,
			booking.HallID,
			booking.Slot,
			booking.BookingDate,
			domain.JoinSeatList(booking.Seats),
			booking.TotalSeats,
			booking.TotalAmount,
		).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.Seats))
		for _, label := range booking.Seats {
			rows = append(rows, []any{
				booking.ID,
				booking.HallID,
				booking.MovieID,
				booking.BookingDate,
				booking.Slot,
				label,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "hall_id", "movie_id", "booking_date", "slot", "seat_label"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return errSeatRowExists
			}

			return err
		}

		return nil
	})
}

// conflictSeats names the overlap between a rejected request and the occupied set.
// An empty intersection means the colliding row was freed between the violation and
// the re-read; the full request is reported then so the caller still sees a conflict.
func conflictSeats(requested, occupied []string) []string {
	conflict := domain.IntersectSeats(requested, occupied)
	if len(conflict) == 0 {
		return requested
	}

	return conflict
}

// occupiedSeatLabels projects the occupied set for a group: the union of seat labels
// across its CONFIRMED bookings. Junction rows exist only while a booking is
// confirmed, so cancellation frees seats without touching this query.
func occupiedSeatLabels(ctx context.Context, q querier, group domain.Group) ([]string, error) {
	query := `
		SELECT seat_label
		FROM booking_seats
		WHERE hall_id = $1
		AND movie_id = $2
		AND booking_date = $3
		AND slot = $4
	`

	rows, err := q.Query(ctx, query, group.HallID, group.MovieID, group.BookingDate, group.Slot)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make([]string, 0)

	for rows.Next() {
		var label string

		if err = rows.Scan(&label); err != nil {
			return nil, err
		}

		labels = append(labels, label)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}

func (p *PostgresBookingRepository) OccupiedSeats(ctx context.Context, group domain.Group) ([]string, error) {
	return occupiedSeatLabels(ctx, p.db, group)
}

// Cancel marks a booking CANCELLED and removes its junction rows so its seats become
// available again immediately. Cancelling an already-cancelled booking is a no-op
// success; an unknown id is ErrRecordNotFound.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE bookings
			SET booking_status = 'CANCELLED', updated_at = NOW()
			WHERE id = $1
		`

		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM booking_seats WHERE booking_id = $1`, id)

		return err
	})
}

func (p *PostgresBookingRepository) UpdatePaymentStatus(ctx context.Context, id int, status domain.PaymentStatus) error {
	query := `
		UPDATE bookings
		SET payment_status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := p.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

const bookingColumns = `
	id, user_id, movie_id, hall_id, slot, booking_date, seats_selected,
	total_seats, total_amount, payment_status, booking_status, created_at, updated_at
`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var seats string

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.MovieID,
		&booking.HallID,
		&booking.Slot,
		&booking.BookingDate,
		&seats,
		&booking.TotalSeats,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Seats = domain.ParseSeatList(seats)

	return &booking, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) GetByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.Booking
		var seats string

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.UserID,
			&booking.MovieID,
			&booking.HallID,
			&booking.Slot,
			&booking.BookingDate,
			&seats,
			&booking.TotalSeats,
			&booking.TotalAmount,
			&booking.PaymentStatus,
			&booking.BookingStatus,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		booking.Seats = domain.ParseSeatList(seats)
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) GetByGroup(ctx context.Context, group domain.Group) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE hall_id = $1
		AND movie_id = $2
		AND booking_date = $3
		AND slot = $4
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, group.HallID, group.MovieID, group.BookingDate, group.Slot)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var seats string

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.MovieID,
			&booking.HallID,
			&booking.Slot,
			&booking.BookingDate,
			&seats,
			&booking.TotalSeats,
			&booking.TotalAmount,
			&booking.PaymentStatus,
			&booking.BookingStatus,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		booking.Seats = domain.ParseSeatList(seats)
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) RevenueSummary(ctx context.Context, from, to time.Time) (*domain.RevenueSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE payment_status = 'SUCCESS'
		AND booking_date BETWEEN $1 AND $2
	`

	var summary domain.RevenueSummary
	var revenue decimal.Decimal

	err := p.db.QueryRow(ctx, query, from, to).Scan(&summary.TotalBookings, &revenue)
	if err != nil {
		return nil, err
	}

	summary.TotalRevenue = revenue

	return &summary, nil
}
