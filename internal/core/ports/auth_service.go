package ports

import (
	"context"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue binds subject and an absolute expiry into a signed token.
	Issue(subject string) (string, error)
	// Verify checks signature, required claims and expiry, returning the
	// subject on success. Failures are domain.ErrTokenSignature,
	// domain.ErrTokenMalformed or domain.ErrTokenExpired.
	Verify(token string) (string, error)
}

// AuthService implements signup, signin and principal resolution.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	// Authenticate verifies a raw bearer token and re-fetches the current
	// principal record. The subject claim is never trusted on its own:
	// role and moderated-set are always read fresh from storage.
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}

// LoginThrottle limits repeated failed signin attempts per identity.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
