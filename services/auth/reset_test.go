package auth

import (
	"context"
	"errors"
	"testing"

	"mindhaven/config"
	"mindhaven/models"
	"mindhaven/utils"
)

// memTokenStore reproduces the redis store's single-use contract in memory.
type memTokenStore struct {
	tokens map[string]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: map[string]string{}}
}

func (s *memTokenStore) Issue(_ context.Context, accountRef string) (string, error) {
	token, err := utils.GenerateSecureToken(8)
	if err != nil {
		return "", err
	}
	s.tokens[accountRef] = token
	return token, nil
}

func (s *memTokenStore) Verify(_ context.Context, accountRef, token string) error {
	stored, ok := s.tokens[accountRef]
	if !ok || stored != token {
		return utils.ErrResetTokenInvalid
	}
	delete(s.tokens, accountRef)
	return nil
}

// recordingNotifier captures the issued token the way the mailer would.
type recordingNotifier struct {
	token string
}

func (n *recordingNotifier) SessionDecided(_ context.Context, _ *models.Session)   {}
func (n *recordingNotifier) SessionCompleted(_ context.Context, _ *models.Session) {}
func (n *recordingNotifier) ResetTokenIssued(_ context.Context, _ models.UserRef, token string) {
	n.token = token
}

func TestResetTokenIsSingleUse(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	notifier := &recordingNotifier{}
	svc := &DefaultResetService{Store: newMemTokenStore(), Notifier: notifier}
	account := models.UserRef("attendee@example.com")

	if err := svc.InitiateReset(context.Background(), account); err != nil {
		t.Fatalf("InitiateReset: %v", err)
	}
	if notifier.token == "" {
		t.Fatalf("expected the token to be handed to the notifier")
	}

	proof, err := svc.VerifyReset(context.Background(), account, notifier.token)
	if err != nil {
		t.Fatalf("VerifyReset: %v", err)
	}
	claims, err := utils.ValidateToken(proof)
	if err != nil {
		t.Fatalf("proof token must validate: %v", err)
	}
	if claims.Subject != account.String() || claims.Role != "password-reset" {
		t.Fatalf("unexpected proof claims: %+v", claims)
	}

	// Second use of the same token fails.
	if _, err := svc.VerifyReset(context.Background(), account, notifier.token); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid on reuse, got %v", err)
	}
}

func TestVerifyResetRejectsWrongToken(t *testing.T) {
	svc := &DefaultResetService{Store: newMemTokenStore(), Notifier: &recordingNotifier{}}
	account := models.UserRef("attendee@example.com")

	if err := svc.InitiateReset(context.Background(), account); err != nil {
		t.Fatalf("InitiateReset: %v", err)
	}
	if _, err := svc.VerifyReset(context.Background(), account, "WRONGTOK"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}

func TestInitiateResetRejectsBadAccount(t *testing.T) {
	svc := &DefaultResetService{Store: newMemTokenStore()}
	if err := svc.InitiateReset(context.Background(), "not-an-email"); err == nil {
		t.Fatalf("expected an error for an invalid account reference")
	}
}

func TestReissueReplacesOutstandingToken(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := &DefaultResetService{Store: newMemTokenStore(), Notifier: notifier}
	account := models.UserRef("attendee@example.com")

	if err := svc.InitiateReset(context.Background(), account); err != nil {
		t.Fatalf("first InitiateReset: %v", err)
	}
	first := notifier.token
	if err := svc.InitiateReset(context.Background(), account); err != nil {
		t.Fatalf("second InitiateReset: %v", err)
	}

	if first != notifier.token {
		if _, err := svc.VerifyReset(context.Background(), account, first); !errors.Is(err, ErrResetTokenInvalid) {
			t.Fatalf("expected the replaced token to be rejected, got %v", err)
		}
	}
	config.AppConfig.JWTSecret = "test-secret"
	if _, err := svc.VerifyReset(context.Background(), account, notifier.token); err != nil {
		t.Fatalf("latest token must verify: %v", err)
	}
}
