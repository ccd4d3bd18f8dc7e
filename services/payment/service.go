package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindhaven/models"
	"mindhaven/services/session"
	"mindhaven/utils"
)

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Sessions session.SessionService
	Gateway  GatewayClient
	// DashboardURL is where the attendee lands after any callback outcome.
	DashboardURL string
}

func (s *DefaultPaymentService) Initiate(ctx context.Context, req models.PaymentInitRequest) (string, error) {
	sess, err := s.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return "", err
	}

	// Paying is only meaningful for an approved online session whose payment
	// is still pending. Re-initiation for a pending payment is allowed; the
	// success callback path absorbs duplicates.
	if sess.SessionStatus != models.SessionApproved {
		return "", fmt.Errorf("%w: session is not approved", session.ErrInvalidState)
	}
	if sess.SessionType != models.SessionOnline {
		return "", fmt.Errorf("%w: offline sessions are not paid through the gateway", session.ErrInvalidState)
	}
	if sess.PaymentStatus == models.PaymentCompleted {
		return "", fmt.Errorf("%w: payment already completed", session.ErrInvalidState)
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", session.ErrInvalidArgument)
	}

	redirectURL, err := s.Gateway.CreateCheckout(ctx, CheckoutRequest{
		SessionID: sess.ID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Billing:   req.Billing,
	})
	if err != nil {
		// The gateway is treated as unreliable; surface a generic initiation
		// failure with no partial state changes.
		utils.GetLogger().Error("gateway checkout failed",
			zap.String("sessionID", sess.ID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstreamPayment, err)
	}
	return redirectURL, nil
}

func (s *DefaultPaymentService) HandleCallback(ctx context.Context, sessionID string, outcome CallbackOutcome) (string, error) {
	switch outcome {
	case OutcomeSuccess:
		if err := s.Sessions.HandlePaymentSuccess(ctx, sessionID); err != nil {
			return "", err
		}
	case OutcomeFail, OutcomeCancel:
		// Payment stays pending; the attendee can initiate again.
		utils.GetLogger().Info("payment callback without completion",
			zap.String("sessionID", sessionID),
			zap.String("outcome", string(outcome)))
	default:
		return "", fmt.Errorf("%w: unknown callback outcome %q", session.ErrInvalidArgument, outcome)
	}
	return s.DashboardURL, nil
}
