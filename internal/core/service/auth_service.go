package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// AuthService implements signup, signin and principal resolution.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	hasher   PasswordHasher
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService wires the authentication use-cases. throttle may be nil,
// in which case failed-login limiting is disabled.
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, hasher PasswordHasher, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, hasher: hasher, throttle: throttle, logger: logger}
}

// SignUp creates a new principal. The role is always "user"; elevation only
// ever happens through an admin's AssignRole or Promote.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user signed up")
	return created, nil
}

// SignIn verifies credentials and issues an access token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("login throttle check failed, continuing")
		} else if blocked {
			return "", domain.ErrInvalidCredentials
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
			}
		}
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
		}
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("user signed in")
	return token, nil
}

// Authenticate verifies a raw bearer token and resolves the current principal
// record. The role and moderated-set are always read fresh — a token only
// carries identity, never a permission snapshot.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	subject, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// A deleted user's token is an authentication failure, not a 404.
			return nil, fmt.Errorf("%w: subject no longer exists", domain.ErrInvalidCredentials)
		}
		return nil, err
	}

	return user, nil
}
