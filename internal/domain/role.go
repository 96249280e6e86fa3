// Package domain defines the records exchanged with the TutorFind backend.
// The backend owns every record here; the client keeps only transient copies.
package domain

import "strings"

// Role is the closed set of account roles. Roles are normalized once at the
// session boundary (login or stored-session migration) and compared directly
// everywhere else.
type Role string

const (
	RoleLearner Role = "LEARNER"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
	RoleNone    Role = ""
)

// ParseRole normalizes a role string case-insensitively. Unknown values map
// to RoleNone rather than an error: the backend is authoritative and a client
// that cannot classify a role simply gates every role-restricted screen off.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LEARNER":
		return RoleLearner
	case "TUTOR":
		return RoleTutor
	case "ADMIN":
		return RoleAdmin
	}
	return RoleNone
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleLearner || r == RoleTutor || r == RoleAdmin
}

func (r Role) String() string { return string(r) }
