// Package authz is the authorization engine: one fixed rule per action,
// evaluated over the actor's role and, for ownership-scoped actions, the
// target article's owner. Decisions are pure and total; every (actor,
// action) pair yields allow or deny, and a deny carries no side effect.
//
// Role and ownership are combined with explicit boolean logic per action.
// There is no shared "can-edit" capability: an editor who may publish
// gains no update or delete rights from it.
package authz

import "github.com/pressroom/publishing-system/internal/core/domain"

// Action enumerates every decision the engine can make.
type Action string

const (
	ActionViewAny      Action = "articles.view_any"
	ActionView         Action = "articles.view"
	ActionCreate       Action = "articles.create"
	ActionUpdate       Action = "articles.update"
	ActionDelete       Action = "articles.delete"
	ActionPublish      Action = "articles.publish"
	ActionAssignRole   Action = "users.assign_role"
	ActionViewAllUsers Action = "users.view_all"
)

// Actions lists every registered action, in rule-table order.
func Actions() []Action {
	return []Action{
		ActionViewAny,
		ActionView,
		ActionCreate,
		ActionUpdate,
		ActionDelete,
		ActionPublish,
		ActionAssignRole,
		ActionViewAllUsers,
	}
}

// Can evaluates the rule for action. target may be nil for actions that
// are not scoped to a single article; ownership-scoped actions deny when
// no target is supplied.
func Can(actor *domain.User, action Action, target *domain.Article) bool {
	switch action {
	case ActionViewAny:
		// Any authenticated actor may list published articles.
		return true
	case ActionView:
		return target != nil &&
			(target.Status == domain.StatusPublished || target.AuthorID == actor.ID)
	case ActionCreate:
		return actor.HasRole(domain.RoleAuthor)
	case ActionUpdate:
		return target != nil &&
			actor.HasRole(domain.RoleAuthor) && target.AuthorID == actor.ID
	case ActionDelete:
		// Unconditional for admins, no ownership check.
		return actor.HasRole(domain.RoleAdmin)
	case ActionPublish:
		return actor.HasRole(domain.RoleEditor) || actor.HasRole(domain.RoleAdmin)
	case ActionAssignRole:
		return actor.HasRole(domain.RoleAdmin)
	case ActionViewAllUsers:
		return actor.HasRole(domain.RoleAdmin)
	default:
		// Unregistered actions are always denied.
		return false
	}
}
