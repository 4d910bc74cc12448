package payment

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bookmymovie/booking-system/internal/domain"
)

func TestSimulatedProviderFailEvery(t *testing.T) {
	provider := NewSimulatedProvider(3)

	want := []domain.PaymentStatus{
		domain.PaymentStatusSuccess,
		domain.PaymentStatusSuccess,
		domain.PaymentStatusFailed,
		domain.PaymentStatusSuccess,
		domain.PaymentStatusSuccess,
		domain.PaymentStatusFailed,
	}

	for i, wantStatus := range want {
		txn, err := provider.Charge(&domain.Booking{ID: i + 1}, &domain.User{ID: 1})
		if err != nil {
			t.Fatalf("Charge() error = %v", err)
		}

		if txn.Status != wantStatus {
			t.Errorf("charge %d status = %v, want %v", i+1, txn.Status, wantStatus)
		}

		if txn.ID == "" {
			t.Errorf("charge %d has empty transaction id", i+1)
		}
	}
}

func TestSimulatedProviderConcurrentCharges(t *testing.T) {
	provider := NewSimulatedProvider(4)

	const charges = 32

	var wg sync.WaitGroup
	var failed atomic.Int64

	for i := 0; i < charges; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			txn, err := provider.Charge(&domain.Booking{ID: id}, &domain.User{ID: 1})
			if err != nil {
				t.Errorf("Charge() error = %v", err)
				return
			}

			if txn.Status == domain.PaymentStatusFailed {
				failed.Add(1)
			}
		}(i + 1)
	}

	wg.Wait()

	if got := failed.Load(); got != charges/4 {
		t.Errorf("failed charges = %d, want %d", got, charges/4)
	}
}
