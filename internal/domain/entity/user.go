// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoogleAuthPassword is the sentinel stored instead of a bcrypt hash for
// accounts created through Google sign-up. Such accounts can never pass a
// password comparison and must authenticate through the provider.
const GoogleAuthPassword = "GOOGLE_AUTH_USER"

// User is the core account entity. A single table carries identity,
// profile and verification state; employees of a business are regular
// users whose BusinessID points at their employer.
type User struct {
	ID             uuid.UUID  // Global unique identifier for the account.
	Email          string     // Primary contact email, used as the login identifier. Unique.
	Name           string     // Display name.
	HashedPassword string     // bcrypt hash, or GoogleAuthPassword for provider-authenticated accounts.
	Number         *string    // Phone number. Unique when set; nil when the user never provided one.
	Address        string     // Free-form postal address.
	ProfilePhoto   string     // Public URL of the profile photo, empty when unset.
	Role           Role       // Either RoleUser or RoleBusinessAdmin.
	IsVerified     bool       // True once the account's email has been verified (OTP or provider).
	OTP            *string    // Pending one-time verification code; nil once verified.
	AuthToken      *string    // Currently active session or password-reset token; nil when logged out.
	BusinessID     *uuid.UUID // Business this account owns (admins) or works for (employees).
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsBusinessAdmin reports whether the account carries the business-admin role.
func (u *User) IsBusinessAdmin() bool {
	return u.Role == RoleBusinessAdmin
}
