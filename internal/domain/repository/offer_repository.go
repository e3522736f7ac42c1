package repository

import (
	"context"
	"errors"
	"time"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when an offer is not found or soft-deleted.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the standard operations for offer persistence.
// Deletion is a soft delete: coupon history references offers, so rows are
// flagged rather than removed.
type OfferRepository interface {
	// FindByID retrieves a single non-deleted offer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByIDIncludingDeleted retrieves an offer even after a soft delete.
	// Coupons redeemed before the delete stay usable, so consumption still
	// needs the offer's terms and owning business.
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// Create persists a new offer entity.
	Create(ctx context.Context, offer *entity.Offer) error

	// Update modifies an existing offer entity.
	Update(ctx context.Context, offer *entity.Offer) error

	// SetPublished toggles the published flag of an offer.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error

	// SoftDelete flags an offer as deleted, hiding it from every listing
	// while keeping the row for coupon audit history.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// ListPublished returns published offers across all businesses whose
	// validity window contains the given instant. The public listing.
	ListPublished(ctx context.Context, now time.Time) ([]*entity.Offer, error)

	// ListByBusiness returns all non-deleted offers of a business, any state.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offer, error)
}
