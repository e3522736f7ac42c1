// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BusinessInput carries the optional business payload attached to a
// business-admin registration or profile update.
type BusinessInput struct {
	Name    string
	Address string
	City    string
	State   string
	Country string
	Pincode string
	Logo    string
}

// RegisterInput defines the data required to register a new account.
// Role selects between a plain user and a business admin; business admins
// carry a business payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Number   string
	Address  string
	Role     entity.Role
	Business *BusinessInput
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// VerifyOTPInput carries the email and the code the user typed.
type VerifyOTPInput struct {
	Email string
	OTP   string
}

// ResetPasswordInput carries the single-use reset token and the new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// UpdateProfileInput is a partial profile update. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name         *string
	Number       *string
	Address      *string
	ProfilePhoto *string
}

// GoogleRegisterInput defines the data for provider-backed registration.
// AccessToken is a Google OAuth access token; the email comes from the
// provider, never from the client.
type GoogleRegisterInput struct {
	AccessToken string
	Name        string
	Role        entity.Role
	Business    *BusinessInput
}

// GoogleSignInInput carries the provider access token for sign-in.
type GoogleSignInInput struct {
	AccessToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// SignInOutput returns the issued token together with the account and, for
// business admins, the owned business.
type SignInOutput struct {
	Token    string
	User     *entity.User
	Business *entity.Business
}

// IdentityUsecase defines the interface for account registration,
// verification and authentication operations.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	ResendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	GoogleRegister(ctx context.Context, input *GoogleRegisterInput) (*SignInOutput, error)
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*SignInOutput, error)
}
