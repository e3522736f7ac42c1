package repository

import (
	"context"
	"errors"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByOwnerID retrieves the business owned by the given user.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// Create persists a new business entity.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business entity.
	Update(ctx context.Context, business *entity.Business) error

	// DeleteByOwnerID removes the business owned by the given user.
	// Used when an unverified business-admin account is flipped back to a user role.
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error
}
