package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeGateway creates Stripe Checkout sessions. The checkout redirects back
// to our callback endpoints with the platform session id in the path.
type StripeGateway struct {
	// PublicBaseURL is this server's externally reachable base URL.
	PublicBaseURL string
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.SessionID),
		CustomerEmail:     stripe.String(req.Billing.Email),
		SuccessURL:        stripe.String(fmt.Sprintf("%s/api/payments/callback/%s/success", g.PublicBaseURL, req.SessionID)),
		CancelURL:         stripe.String(fmt.Sprintf("%s/api/payments/callback/%s/cancel", g.PublicBaseURL, req.SessionID)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Therapy session"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	cs, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout creation failed: %w", err)
	}
	return cs.URL, nil
}
