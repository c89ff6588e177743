package booking

import (
	"fmt"

	"doctorsportal/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentCreator is the processor call used to create a payment intent.
// Tests substitute a fake; production uses paymentintent.New.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// MinorUnits converts a decimal currency amount to the processor's integer
// minor units (cents).
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreatePaymentIntent requests a card payment intent in USD and returns the
// client secret used by the client to confirm the charge.
func (s *DefaultBookingService) CreatePaymentIntent(price float64) (string, error) {
	logger := utils.GetLogger()

	create := s.CreateIntent
	if create == nil {
		create = paymentintent.New
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := create(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	logger.Info("payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("amount", pi.Amount))
	return pi.ClientSecret, nil
}
