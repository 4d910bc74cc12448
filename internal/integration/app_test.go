package integration_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookmymovie/booking-system/internal/app"
	"github.com/bookmymovie/booking-system/internal/mailer"
	"github.com/bookmymovie/booking-system/internal/payment"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockMailer := mailer.NewMockMailer()

	application, err := app.New(cfg, logger,
		app.WithMailer(mockMailer),
		app.WithPaymentProvider(payment.NewSimulatedProvider(0)),
	)
	if err != nil {
		return nil, err
	}

	// Separate pool for seeding and asserting database state.
	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}
