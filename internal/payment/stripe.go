package payment

import (
	"fmt"
	"strconv"

	"github.com/bookmymovie/booking-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeProvider charges through a Stripe Checkout session. It returns a PENDING
// transaction carrying the redirect URL; the final status arrives out of band.
type StripeProvider struct {
	failureUrl string
	successUrl string
}

func NewStripeProvider(failureUrl, successUrl string) *StripeProvider {
	return &StripeProvider{
		failureUrl: failureUrl,
		successUrl: successUrl,
	}
}

func (s *StripeProvider) Charge(booking *domain.Booking, user *domain.User) (*domain.PaymentTransaction, error) {
	amountCents := booking.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(amountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Movie booking #%d", booking.ID)),
						Description: stripe.String(fmt.Sprintf(
							"Seats: %s • Date: %s • Slot: %s",
							domain.JoinSeatList(booking.Seats),
							booking.BookingDate.Format("Jan 2, 2006"),
							booking.Slot,
						)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.failureUrl),
		Metadata: map[string]string{
			"booking_id": strconv.Itoa(booking.ID),
			"user_id":    strconv.Itoa(booking.UserID),
		},
		CustomerEmail:     &user.Email,
		ClientReferenceID: stripe.String(strconv.Itoa(booking.UserID)),
	}

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentTransaction{
		ID:          checkoutSession.ID,
		Status:      domain.PaymentStatusPending,
		RedirectUrl: checkoutSession.URL,
	}, nil
}
