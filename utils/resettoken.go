package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// ErrResetTokenInvalid covers missing, expired and mismatched tokens alike so
// callers cannot probe which accounts have a pending reset.
var ErrResetTokenInvalid = errors.New("reset token invalid or expired")

// ResetTokenStore keeps password-reset tokens in Redis, keyed per account,
// with an explicit TTL. Tokens are bcrypt-hashed at rest and deleted on first
// successful verification (single-use).
type ResetTokenStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewResetTokenStore(client *redis.Client, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{Client: client, TTL: ttl}
}

func resetTokenKey(accountRef string) string {
	return fmt.Sprintf("reset:%s", accountRef)
}

// GenerateSecureToken returns a base32 random token of the given length.
func GenerateSecureToken(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(token) > length {
		token = token[:length]
	}
	return token, nil
}

// Issue creates a fresh token for the account, replacing any outstanding one.
func (s *ResetTokenStore) Issue(ctx context.Context, accountRef string) (string, error) {
	token, err := GenerateSecureToken(8)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash reset token: %w", err)
	}
	if err := s.Client.Set(ctx, resetTokenKey(accountRef), hash, s.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// Verify checks the provided token against the stored hash and consumes it on
// success. A second verification with the same token fails.
func (s *ResetTokenStore) Verify(ctx context.Context, accountRef, token string) error {
	key := resetTokenKey(accountRef)
	hash, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to retrieve reset token: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
		return ErrResetTokenInvalid
	}
	if err := s.Client.Del(ctx, key).Err(); err != nil {
		GetLogger().Sugar().Errorf("failed to delete reset token for %s: %v", accountRef, err)
	}
	return nil
}
