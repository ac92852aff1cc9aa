package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"

	"go.uber.org/zap"
)

// StripePaymentProcessor implements PaymentProcessor against the Stripe API.
// The global stripe.Key is set once at startup.
type StripePaymentProcessor struct {
	logger *zap.Logger
}

// NewStripePaymentProcessor creates a PaymentProcessor backed by Stripe.
func NewStripePaymentProcessor(logger *zap.Logger) *StripePaymentProcessor {
	return &StripePaymentProcessor{logger: logger}
}

// CreateIntent creates a payment intent for the booking's total amount.
func (p *StripePaymentProcessor) CreateIntent(ctx context.Context, b *models.Booking) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(b.Pricing.TotalAmount)),
		Currency: stripe.String(strings.ToLower(string(b.Pricing.Currency))),
		Metadata: map[string]string{
			"bookingId":        b.ID,
			"bookingReference": b.BookingReference,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.logger.Info("payment intent created",
		zap.String("booking", b.ID), zap.String("intent", pi.ID))
	return pi.ID, nil
}

// Refund returns part or all of a captured payment to the guest.
func (p *StripePaymentProcessor) Refund(ctx context.Context, b *models.Booking, amount float64) (string, error) {
	if b.Payment.TransactionID == "" {
		return "", &InvalidInputError{Reason: "booking has no payment transaction to refund"}
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(b.Payment.TransactionID),
		Amount:        stripe.Int64(toMinorUnits(amount)),
	}
	params.Context = ctx

	r, err := refund.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to refund payment for booking %s: %w", b.ID, err)
	}

	p.logger.Info("payment refunded",
		zap.String("booking", b.ID), zap.String("refund", r.ID), zap.Float64("amount", amount))
	return r.ID, nil
}

// All supported currencies use two decimal places.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
