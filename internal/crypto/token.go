package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "todo-api"

// ErrInvalidToken covers every verification failure: garbage input, bad
// signature, wrong algorithm, wrong issuer, missing subject, expiry. The
// caller only needs to know the token cannot be trusted.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies signed session tokens. Tokens are
// stateless: validity is determined entirely by the HMAC signature and the
// expiry claim, with no server-side session storage.
type TokenService struct {
	key []byte
	ttl time.Duration
}

// NewTokenService creates a TokenService. The key is the raw (decoded)
// symmetric signing key and must be at least 32 bytes for HS256.
func NewTokenService(key []byte, ttl time.Duration) (*TokenService, error) {
	if len(key) < 32 {
		return nil, errors.New("signing key must be at least 32 bytes")
	}
	if ttl <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &TokenService{key: key, ttl: ttl}, nil
}

// Issue creates a signed token whose subject is the given username,
// valid from now until now plus the configured lifetime.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks the token's signature and freshness and returns the subject
// username. The subject is only read from claims the library has already
// signature-checked, so an attacker cannot smuggle an identity through a
// tampered payload. Fails closed: any parse or validation error returns
// ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
