package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// UserService implements principal management use-cases.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.users.ListByRole(ctx, role)
}

// UpdateProfile merge-patches the acting principal's own profile: only
// non-nil fields overwrite the stored record.
func (s *UserService) UpdateProfile(ctx context.Context, principal *domain.User, patch ports.UserProfilePatch) error {
	return s.users.UpdateProfile(ctx, principal.Email, patch)
}

// DeleteAccount removes the acting principal. Any token already issued for
// the identity stops resolving the moment the record is gone.
func (s *UserService) DeleteAccount(ctx context.Context, principal *domain.User) error {
	if err := s.users.Delete(ctx, principal.Email); err != nil {
		return err
	}
	s.logger.Info().Str("email", principal.Email).Msg("user deleted own account")
	return nil
}

// AssignRole sets the target's role. Admin only — no ownership or
// moderation fallback applies here.
func (s *UserService) AssignRole(ctx context.Context, actor *domain.User, targetID, role string) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetRole(ctx, targetID, role); err != nil {
		return nil, err
	}

	s.logger.Info().Str("actor", actor.Email).Str("target", target.Email).Str("role", role).Msg("role assigned")
	target.Role = role
	return target, nil
}

// Promote grants the target moderation of hobbyName and makes it a
// moderator. Admin only. The grant is additive: moderating a second hobby
// never clears the first.
func (s *UserService) Promote(ctx context.Context, actor *domain.User, targetEmail, hobbyName string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByEmail(ctx, targetEmail); err != nil {
		return err
	}
	if err := s.users.GrantModeration(ctx, targetEmail, hobbyName); err != nil {
		return err
	}

	s.logger.Info().Str("actor", actor.Email).Str("target", targetEmail).Str("hobby", hobbyName).Msg("user promoted to moderator")
	return nil
}
