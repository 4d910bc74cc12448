package domain

import (
	"context"
	"time"
)

// User is a lookup-only collaborator: the booking core reads name and email to
// enrich confirmations and address notifications. Account management lives outside
// this service.
type User struct {
	ID        int
	Name      string
	Email     string
	CreatedAt time.Time
}

type UserRepository interface {
	GetById(ctx context.Context, id int) (*User, error)
}
