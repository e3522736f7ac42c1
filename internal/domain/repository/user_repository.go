// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create or update violates the email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateNumber is returned when a create or update violates the phone-number uniqueness constraint.
	ErrDuplicateNumber = errors.New("phone number already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByNumber retrieves a single user by their phone number.
	FindByNumber(ctx context.Context, number string) (*entity.User, error)

	// FindByAuthToken retrieves the user currently holding the given session
	// or reset token. Backs the single-use password-reset check.
	FindByAuthToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity.
	Update(ctx context.Context, user *entity.User) error

	// ListEmployeesByBusiness returns all employee accounts of a business,
	// excluding the owner, ordered by creation time.
	ListEmployeesByBusiness(ctx context.Context, businessID, ownerID uuid.UUID) ([]*entity.User, error)

	// DeleteEmployees removes the given employee accounts, scoped to the
	// business so an admin can never delete accounts outside their roster.
	// It returns the number of accounts actually removed.
	DeleteEmployees(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) (int64, error)
}
