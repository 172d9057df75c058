package models

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent       Role = "student"
	RoleTeacher       Role = "teacher"
	RoleAdministrator Role = "administrator"
	RoleUser          Role = "user"
)

// ParseRole validates a role string coming from the outside.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdministrator, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

func (r Role) String() string { return string(r) }

// In reports whether r is one of the given roles.
func (r Role) In(roles ...Role) bool {
	for _, other := range roles {
		if r == other {
			return true
		}
	}
	return false
}
