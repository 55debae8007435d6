package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of an issued access token.
const DefaultTokenTTL = 1500 * time.Second

// TokenService issues and verifies HS256-signed bearer tokens carrying the
// claims {"user": <subject>, "expires": <unix-seconds>}. Verification is
// stateless: expiry is embedded in the token, never tracked server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService around a symmetric signing secret.
// The secret is injected here rather than read from a global so tests and
// key rotation never touch call sites.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding subject to an absolute expiry instant.
func (s *TokenService) Issue(subject string) (string, error) {
	claims := jwt.MapClaims{
		"user":    subject,
		"expires": float64(time.Now().Add(s.ttl).Unix()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature, required claims and expiry of a raw token and
// returns its subject. The error distinguishes signature, malformed and
// expired failures; callers present them to clients behind one message.
func (s *TokenService) Verify(raw string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", domain.ErrTokenSignature
		}
		return "", domain.ErrTokenMalformed
	}

	subject, ok := claims["user"].(string)
	if !ok || subject == "" {
		return "", domain.ErrTokenMalformed
	}

	// "expires" is not a registered claim, so the jwt library does not
	// validate it; check it by hand.
	expires, ok := claims["expires"].(float64)
	if !ok {
		return "", domain.ErrTokenMalformed
	}
	if float64(time.Now().Unix()) > expires {
		return "", domain.ErrTokenExpired
	}

	return subject, nil
}
