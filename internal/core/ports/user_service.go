package ports

import (
	"context"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

// UserService defines use-case operations on principals.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// UpdateProfile merge-patches the acting principal's own profile.
	UpdateProfile(ctx context.Context, principal *domain.User, patch UserProfilePatch) error
	// DeleteAccount removes the acting principal. Outstanding tokens for the
	// deleted identity stop resolving immediately.
	DeleteAccount(ctx context.Context, principal *domain.User) error
	// AssignRole sets the target's role. Admin only.
	AssignRole(ctx context.Context, actor *domain.User, targetID, role string) (*domain.User, error)
	// Promote adds hobbyName to the target's moderated set and makes the
	// target a moderator. Admin only, additive across calls.
	Promote(ctx context.Context, actor *domain.User, targetEmail, hobbyName string) error
}
