package domain

// PaymentTransaction is the out-of-band payment collaborator's result. It updates
// only a booking's payment status and never re-checks seat occupancy.
type PaymentTransaction struct {
	ID          string
	Status      PaymentStatus
	RedirectUrl string
}

type PaymentProvider interface {
	Charge(booking *Booking, user *User) (*PaymentTransaction, error)
}
