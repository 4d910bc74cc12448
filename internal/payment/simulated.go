// Package payment holds the out-of-band payment collaborators. Their results update
// a booking's payment status only; seat occupancy is never re-checked here.
package payment

import (
	"sync/atomic"

	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/google/uuid"
)

// SimulatedProvider is the default, non-authoritative processor. It mints a
// transaction id and reports success without contacting any real gateway. One
// instance serves all requests, so the charge counter is atomic.
type SimulatedProvider struct {
	failEvery int64
	charges   atomic.Int64
}

func NewSimulatedProvider(failEvery int) *SimulatedProvider {
	return &SimulatedProvider{
		failEvery: int64(failEvery),
	}
}

func (s *SimulatedProvider) Charge(booking *domain.Booking, user *domain.User) (*domain.PaymentTransaction, error) {
	charges := s.charges.Add(1)

	status := domain.PaymentStatusSuccess
	if s.failEvery > 0 && charges%s.failEvery == 0 {
		status = domain.PaymentStatusFailed
	}

	return &domain.PaymentTransaction{
		ID:     uuid.NewString(),
		Status: status,
	}, nil
}
