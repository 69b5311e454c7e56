package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
	RoleSuper  Role = "SUPER"
)

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch role {
	case RoleMember, RoleAdmin, RoleSuper:
		return role, nil
	}
	return "", Validationf("unknown role %q", s)
}

// Actor is the authenticated caller as reported by the auth gateway.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) CanEditBookings() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuper
}

func (a Actor) CanDeleteBookings() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuper
}

func (a Actor) CanManageRates() bool {
	return a.Role == RoleSuper
}

func (a Actor) CanManageRooms() bool {
	return a.Role == RoleSuper
}

type actorKey struct{}

func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
