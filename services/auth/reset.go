// Package auth holds the slice of account security this service owns: the
// password-reset token flow. Credential storage and login live in the
// external auth service; on successful verification we mint a short-lived
// proof token that service accepts.
package auth

import (
	"context"
	"errors"
	"time"

	"mindhaven/models"
	"mindhaven/services/notification"
	"mindhaven/utils"
)

// ErrResetTokenInvalid mirrors the store error for callers outside utils.
var ErrResetTokenInvalid = utils.ErrResetTokenInvalid

const resetProofTTL = 10 * time.Minute

type ResetService interface {
	InitiateReset(ctx context.Context, account models.UserRef) error
	// VerifyReset consumes the token and returns a signed proof JWT.
	VerifyReset(ctx context.Context, account models.UserRef, token string) (string, error)
}

// TokenStore is the slice of utils.ResetTokenStore this service needs.
type TokenStore interface {
	Issue(ctx context.Context, accountRef string) (string, error)
	Verify(ctx context.Context, accountRef, token string) error
}

type DefaultResetService struct {
	Store    TokenStore
	Notifier notification.Notifier
}

func (s *DefaultResetService) InitiateReset(ctx context.Context, account models.UserRef) error {
	if !account.Valid() {
		return errors.New("account reference is required")
	}
	token, err := s.Store.Issue(ctx, account.String())
	if err != nil {
		return err
	}
	if s.Notifier != nil {
		s.Notifier.ResetTokenIssued(ctx, account, token)
	}
	return nil
}

func (s *DefaultResetService) VerifyReset(ctx context.Context, account models.UserRef, token string) (string, error) {
	if err := s.Store.Verify(ctx, account.String(), token); err != nil {
		return "", err
	}
	return utils.GenerateToken(account.String(), "password-reset", resetProofTTL)
}
