package ports

import (
	"context"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

// UserProfilePatch carries a merge-patch for mutable profile fields.
// Nil fields are left untouched on the stored record.
type UserProfilePatch struct {
	Name    *string
	Hobbies []string
}

// UserRepository defines persistence operations for principals.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email string, patch UserProfilePatch) error
	SetRole(ctx context.Context, id string, role string) error
	// GrantModeration adds hobbyName to the user's moderated set (idempotent,
	// additive) and sets the role to moderator.
	GrantModeration(ctx context.Context, email string, hobbyName string) error
	Delete(ctx context.Context, email string) error
}
