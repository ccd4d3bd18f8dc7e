package payment

import (
	"context"
	"errors"

	"mindhaven/models"
)

// ErrUpstreamPayment means the external gateway could not start the checkout.
// No local state changes when this is returned.
var ErrUpstreamPayment = errors.New("payment could not be started")

// CallbackOutcome is the path segment the gateway calls back on.
type CallbackOutcome string

const (
	OutcomeSuccess CallbackOutcome = "success"
	OutcomeFail    CallbackOutcome = "fail"
	OutcomeCancel  CallbackOutcome = "cancel"
)

// CheckoutRequest is the gateway-facing shape of a payment initiation.
type CheckoutRequest struct {
	SessionID string
	Amount    int64 // minor units
	Currency  string
	Billing   models.BillingDetails
}

// GatewayClient creates a hosted checkout and returns the URL the attendee is
// redirected to. The gateway later calls back on success/fail/cancel with the
// session id in the URL path.
type GatewayClient interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (redirectURL string, err error)
}

// PaymentService mediates between sessions and the external gateway.
type PaymentService interface {
	Initiate(ctx context.Context, req models.PaymentInitRequest) (redirectURL string, err error)
	// HandleCallback applies the outcome and returns the dashboard URL to
	// redirect the user to. Only success mutates state (transition to
	// paymentStatus=completed); fail and cancel leave the payment pending.
	HandleCallback(ctx context.Context, sessionID string, outcome CallbackOutcome) (dashboardURL string, err error)
}
