package auth

import (
	"strings"

	"fitcircle/internal/apperror"
)

// Role is a named permission level. Higher priority roles include the rights
// of lower ones.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleTrainer    Role = "TRAINER"
	RoleMember     Role = "MEMBER"
	RoleGuest      Role = "GUEST"
)

type roleInfo struct {
	displayName string
	priority    int
}

var roles = map[Role]roleInfo{
	RoleSuperAdmin: {"Super Administrator", 100},
	RoleAdmin:      {"Administrator", 90},
	RoleManager:    {"Manager", 80},
	RoleTrainer:    {"Trainer", 70},
	RoleMember:     {"Member", 60},
	RoleGuest:      {"Guest", 50},
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", apperror.ValidationField("auth.role", "role", "unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}

func (r Role) DisplayName() string { return roles[r].displayName }

// Priority is zero for unknown roles.
func (r Role) Priority() int { return roles[r].priority }

func (r Role) HasAtLeast(min Role) bool {
	return r.Valid() && r.Priority() >= min.Priority()
}
