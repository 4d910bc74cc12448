package mocks

import (
	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Charge(booking *domain.Booking, user *domain.User) (*domain.PaymentTransaction, error) {
	args := m.Called(booking, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTransaction), args.Error(1)
}
