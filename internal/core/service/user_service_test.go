package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, role string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		Name:         email,
		PasswordHash: "x",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", email, err)
	}
	return user
}

func TestUserService_Promote_Additive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root@example.com", domain.RoleAdmin)
	seedUser(t, repo, "mod@example.com", domain.RoleUser)

	if err := svc.Promote(context.Background(), admin, "mod@example.com", "hiking"); err != nil {
		t.Fatalf("first promote failed: %v", err)
	}
	if err := svc.Promote(context.Background(), admin, "mod@example.com", "cooking"); err != nil {
		t.Fatalf("second promote failed: %v", err)
	}

	target, err := repo.FindByEmail(context.Background(), "mod@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if target.Role != domain.RoleModerator {
		t.Fatalf("expected moderator role, got %q", target.Role)
	}
	if !target.Moderates("hiking") || !target.Moderates("cooking") {
		t.Fatalf("moderated set not additive: %v", target.ModeratedHobbies)
	}
}

func TestUserService_Promote_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	plain := seedUser(t, repo, "bob@example.com", domain.RoleUser)
	seedUser(t, repo, "mod@example.com", domain.RoleUser)

	if err := svc.Promote(context.Background(), plain, "mod@example.com", "hiking"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Promote_UnknownTarget(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root@example.com", domain.RoleAdmin)

	if err := svc.Promote(context.Background(), admin, "ghost@example.com", "hiking"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_AssignRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root@example.com", domain.RoleAdmin)
	target := seedUser(t, repo, "bob@example.com", domain.RoleUser)

	updated, err := svc.AssignRole(context.Background(), admin, target.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role on response, got %q", updated.Role)
	}

	stored, err := repo.FindByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("role not persisted, got %q", stored.Role)
	}
}

func TestUserService_AssignRole_Gates(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root@example.com", domain.RoleAdmin)
	mod := seedUser(t, repo, "mod@example.com", domain.RoleModerator)
	target := seedUser(t, repo, "bob@example.com", domain.RoleUser)

	if _, err := svc.AssignRole(context.Background(), mod, target.ID, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("moderator must not assign roles, got %v", err)
	}
	if _, err := svc.AssignRole(context.Background(), admin, target.ID, "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.AssignRole(context.Background(), admin, "missing-id", domain.RoleUser); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_MergePatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice@example.com", domain.RoleUser)
	if err := repo.UpdateProfile(context.Background(), user.Email, ports.UserProfilePatch{Hobbies: []string{"hiking"}}); err != nil {
		t.Fatalf("seed hobbies: %v", err)
	}

	name := "Alice W."
	if err := svc.UpdateProfile(context.Background(), user, ports.UserProfilePatch{Name: &name}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := repo.FindByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Name != "Alice W." {
		t.Fatalf("name not patched, got %q", stored.Name)
	}
	if len(stored.Hobbies) != 1 || stored.Hobbies[0] != "hiking" {
		t.Fatalf("untouched field overwritten: %v", stored.Hobbies)
	}
}

func TestUserService_DeleteAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice@example.com", domain.RoleUser)

	if err := svc.DeleteAccount(context.Background(), user); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), user.Email); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("account still resolvable: %v", err)
	}
}

func TestUserService_ListByRole_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	if _, err := svc.ListByRole(context.Background(), "wizard"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
