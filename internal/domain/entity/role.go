// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user account carries.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleBusinessAdmin indicates a business-admin role (the owner of a business).
	RoleBusinessAdmin Role = "business_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBusinessAdmin:
		return true
	default:
		return false
	}
}
