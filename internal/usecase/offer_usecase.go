package usecase

import (
	"context"
	"time"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveOfferInput creates or updates an offer. A nil OfferID creates; a set
// OfferID updates the existing offer, owner-checked.
type SaveOfferInput struct {
	OfferID         *uuid.UUID
	Title           string
	Description     string
	DiscountPercent int
	UsageLimit      int
	ValidFrom       time.Time
	ValidUntil      time.Time
}

// OfferUsecase defines the catalog operations over a business's offers.
type OfferUsecase interface {
	// SaveOffer creates a new offer or updates an existing one, scoped to
	// the admin's own business.
	SaveOffer(ctx context.Context, adminID uuid.UUID, input *SaveOfferInput) (*entity.Offer, error)

	// DeleteOffer soft-deletes an offer so coupon history stays intact.
	DeleteOffer(ctx context.Context, adminID, offerID uuid.UUID) error

	// SetOfferPublished publishes or unpublishes an offer.
	SetOfferPublished(ctx context.Context, adminID, offerID uuid.UUID, published bool) (*entity.Offer, error)

	// ListPublishedOffers is the public listing: published offers inside
	// their validity window, across all businesses.
	ListPublishedOffers(ctx context.Context) ([]*entity.Offer, error)

	// ListBusinessOffers returns every non-deleted offer of the admin's
	// business regardless of state.
	ListBusinessOffers(ctx context.Context, adminID uuid.UUID) ([]*entity.Offer, error)
}
