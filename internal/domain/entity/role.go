// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleMember indicates a regular portal member.
	RoleMember Role = "member"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role. Unknown values fall back to
// RoleMember so a malformed claim never grants privileges.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleMember
	}

	return role
}
