package service

import "github.com/hobbyhub/community-platform/internal/core/domain"

// Action is a requested mutation on a resource.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// CanAct decides whether principal may perform action on res. It is a pure
// function of its inputs; callers fetch both snapshots fresh per request.
//
// Precedence, first match wins:
//  1. admin → allow
//  2. owner → allow (except hobby deletion, see ownerMayAct)
//  3. moderator whose moderated set contains the resource's hobby scope → allow
//  4. deny
func CanAct(principal *domain.User, action Action, res domain.Resource) bool {
	if principal == nil {
		return false
	}
	if principal.Role == domain.RoleAdmin {
		return true
	}
	if ownerMayAct(action, res) && principal.Email == res.ResourceOwner() {
		return true
	}
	return principal.Role == domain.RoleModerator && principal.Moderates(res.ModerationScope())
}

// ownerMayAct reports whether ownership alone authorizes the action.
// Deleting a hobby is the single carve-out: the owner may edit the hobby
// they created but deletion needs admin or a moderator scoped to it.
func ownerMayAct(action Action, res domain.Resource) bool {
	if action != ActionDelete {
		return true
	}
	_, isHobby := res.(*domain.Hobby)
	return !isHobby
}
