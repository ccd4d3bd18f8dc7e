package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindhaven/models"
	"mindhaven/services/session"
)

// stubSessionService serves one canned session and records payment callbacks.
type stubSessionService struct {
	sess         *models.Session
	successCalls int
}

func (s *stubSessionService) GetByID(_ context.Context, id string) (*models.Session, error) {
	if s.sess == nil || s.sess.ID != id {
		return nil, session.ErrNotFound
	}
	cp := *s.sess
	return &cp, nil
}

func (s *stubSessionService) HandlePaymentSuccess(_ context.Context, id string) error {
	if s.sess == nil || s.sess.ID != id {
		return session.ErrNotFound
	}
	s.successCalls++
	s.sess.PaymentStatus = models.PaymentCompleted
	return nil
}

func (s *stubSessionService) Request(context.Context, session.RequestInput) (*models.Session, error) {
	panic("not used")
}
func (s *stubSessionService) Decide(context.Context, string, session.Decision) (*models.Session, error) {
	panic("not used")
}
func (s *stubSessionService) Complete(context.Context, string) (*models.Session, error) {
	panic("not used")
}
func (s *stubSessionService) AttachRecommendation(context.Context, string, string) (*models.Session, error) {
	panic("not used")
}
func (s *stubSessionService) ListByAttendee(context.Context, models.UserRef) ([]models.Session, error) {
	panic("not used")
}
func (s *stubSessionService) ListByProfessional(context.Context, models.UserRef) ([]models.Session, error) {
	panic("not used")
}
func (s *stubSessionService) JoinAccess(context.Context, string, time.Time) (*session.JoinVerdict, error) {
	panic("not used")
}

type stubGateway struct {
	url  string
	err  error
	last CheckoutRequest
}

func (g *stubGateway) CreateCheckout(_ context.Context, req CheckoutRequest) (string, error) {
	g.last = req
	return g.url, g.err
}

func approvedOnlineSession() *models.Session {
	return &models.Session{
		ID:              "sess-1",
		AttendeeRef:     "attendee@example.com",
		ProfessionalRef: "mhp@example.com",
		SessionType:     models.SessionOnline,
		SessionStatus:   models.SessionApproved,
		SessionDate:     time.Now().AddDate(0, 0, 1),
		PaymentStatus:   models.PaymentPending,
	}
}

func initRequest() models.PaymentInitRequest {
	return models.PaymentInitRequest{
		SessionID: "sess-1",
		Amount:    5000,
		Currency:  "usd",
		Billing:   models.BillingDetails{Name: "A B", Email: "attendee@example.com"},
	}
}

func TestInitiateReturnsGatewayRedirect(t *testing.T) {
	gw := &stubGateway{url: "https://gateway.example/checkout/123"}
	svc := &DefaultPaymentService{
		Sessions:     &stubSessionService{sess: approvedOnlineSession()},
		Gateway:      gw,
		DashboardURL: "https://app.example/dashboard",
	}

	url, err := svc.Initiate(context.Background(), initRequest())
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if url != gw.url {
		t.Fatalf("expected redirect %q, got %q", gw.url, url)
	}
	if gw.last.SessionID != "sess-1" || gw.last.Amount != 5000 {
		t.Fatalf("gateway got wrong checkout request: %+v", gw.last)
	}
}

func TestInitiateGuards(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Session)
	}{
		{"pending session", func(s *models.Session) { s.SessionStatus = models.SessionPending }},
		{"declined session", func(s *models.Session) { s.SessionStatus = models.SessionDeclined }},
		{"offline session", func(s *models.Session) { s.SessionType = models.SessionOffline }},
		{"already paid", func(s *models.Session) { s.PaymentStatus = models.PaymentCompleted }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := approvedOnlineSession()
			tc.mutate(sess)
			svc := &DefaultPaymentService{
				Sessions: &stubSessionService{sess: sess},
				Gateway:  &stubGateway{url: "https://gateway.example/x"},
			}
			if _, err := svc.Initiate(context.Background(), initRequest()); !errors.Is(err, session.ErrInvalidState) {
				t.Fatalf("expected ErrInvalidState, got %v", err)
			}
		})
	}
}

func TestInitiateUnknownSession(t *testing.T) {
	svc := &DefaultPaymentService{
		Sessions: &stubSessionService{},
		Gateway:  &stubGateway{},
	}
	if _, err := svc.Initiate(context.Background(), initRequest()); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInitiateWrapsGatewayFailure(t *testing.T) {
	svc := &DefaultPaymentService{
		Sessions: &stubSessionService{sess: approvedOnlineSession()},
		Gateway:  &stubGateway{err: errors.New("connection reset")},
	}
	if _, err := svc.Initiate(context.Background(), initRequest()); !errors.Is(err, ErrUpstreamPayment) {
		t.Fatalf("expected ErrUpstreamPayment, got %v", err)
	}
}

func TestCallbackSuccessCompletesPayment(t *testing.T) {
	stub := &stubSessionService{sess: approvedOnlineSession()}
	svc := &DefaultPaymentService{
		Sessions:     stub,
		Gateway:      &stubGateway{},
		DashboardURL: "https://app.example/dashboard",
	}

	url, err := svc.HandleCallback(context.Background(), "sess-1", OutcomeSuccess)
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if url != svc.DashboardURL {
		t.Fatalf("expected dashboard redirect, got %q", url)
	}
	if stub.successCalls != 1 {
		t.Fatalf("expected one completion call, got %d", stub.successCalls)
	}
}

func TestCallbackFailAndCancelLeavePaymentPending(t *testing.T) {
	for _, outcome := range []CallbackOutcome{OutcomeFail, OutcomeCancel} {
		stub := &stubSessionService{sess: approvedOnlineSession()}
		svc := &DefaultPaymentService{
			Sessions:     stub,
			Gateway:      &stubGateway{},
			DashboardURL: "https://app.example/dashboard",
		}

		url, err := svc.HandleCallback(context.Background(), "sess-1", outcome)
		if err != nil {
			t.Fatalf("HandleCallback(%s): %v", outcome, err)
		}
		if url != svc.DashboardURL {
			t.Fatalf("expected dashboard redirect for %s, got %q", outcome, url)
		}
		if stub.successCalls != 0 {
			t.Fatalf("%s must not complete the payment", outcome)
		}
		if stub.sess.PaymentStatus != models.PaymentPending {
			t.Fatalf("%s must leave payment pending", outcome)
		}
	}
}

func TestCallbackUnknownOutcome(t *testing.T) {
	svc := &DefaultPaymentService{
		Sessions: &stubSessionService{sess: approvedOnlineSession()},
		Gateway:  &stubGateway{},
	}
	if _, err := svc.HandleCallback(context.Background(), "sess-1", CallbackOutcome("refund")); !errors.Is(err, session.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCallbackSuccessUnknownSession(t *testing.T) {
	svc := &DefaultPaymentService{
		Sessions: &stubSessionService{},
		Gateway:  &stubGateway{},
	}
	if _, err := svc.HandleCallback(context.Background(), "nope", OutcomeSuccess); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
