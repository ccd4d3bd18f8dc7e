package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"mindhaven/config"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// Claims extracted from a verified bearer token. Tokens are issued by the
// external auth service; this side only validates them.
type Claims struct {
	Subject string
	Role    string
}

// GenerateToken creates a signed short-lived JWT with the given subject and
// role. Used for the password-reset proof token only; login tokens come from
// the auth service.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns its claims.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{Subject: sub, Role: role}, nil
}
