package domain

import (
	"context"
	"time"
)

// Hall declares a fixed total-seat capacity; seat creation is rejected once the
// catalog reaches it.
type Hall struct {
	ID         int
	Name       string
	TotalSeats int
	CreatedAt  time.Time
}

type HallRepository interface {
	Create(ctx context.Context, hall *Hall) error
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
}
