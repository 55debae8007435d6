package domain

import "time"

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// ValidRole reports whether s is one of the three persisted role values.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleModerator || s == RoleUser
}

// User models an authenticated principal in the system.
//
// ModeratedHobbies is meaningful only while Role is "moderator"; an admin
// has authority over everything regardless of its contents.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name,omitempty"`
	PasswordHash     string    `json:"-"`
	Hobbies          []string  `json:"hobbies,omitempty"`
	Role             string    `json:"role"`
	ModeratedHobbies []string  `json:"moderated_hobbies,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Moderates reports whether the user holds a moderation grant for the hobby.
func (u *User) Moderates(hobbyName string) bool {
	for _, h := range u.ModeratedHobbies {
		if h == hobbyName {
			return true
		}
	}
	return false
}
