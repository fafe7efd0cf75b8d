package models

import (
	"fmt"
	"strings"
)

// Role controls what a user may do with content.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAuthor    Role = "AUTHOR"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Roles lists every assignable role.
func Roles() []Role {
	return []Role{RoleUser, RoleAuthor, RoleModerator, RoleAdmin}
}

// ParseRole maps a request string onto a known role.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAuthor:
		return RoleAuthor, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role: %q", value)
	}
}

// CanCreateContent reports whether the role may create recipes and blogs.
func (r Role) CanCreateContent() bool {
	return r == RoleAuthor || r == RoleAdmin || r == RoleModerator
}
