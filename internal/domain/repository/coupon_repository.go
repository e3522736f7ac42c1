package repository

import (
	"context"
	"errors"
	"time"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCoupon is returned when creating a coupon violates the
	// one-held-coupon-per-(user, offer) uniqueness constraint. This is the
	// constraint-enforced half of the redemption invariant: under concurrent
	// redemption requests exactly one insert succeeds.
	ErrDuplicateCoupon = errors.New("coupon already held for this user and offer")
	// ErrNoUsesLeft is returned by ConsumeUse when the conditional increment
	// matched no row because the coupon already reached its usage limit.
	ErrNoUsesLeft = errors.New("coupon has no remaining uses")
)

// CouponRepository defines the standard operations for coupon persistence.
type CouponRepository interface {
	// FindByID retrieves a single coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindActiveByUserAndOffer retrieves the user's coupon holding the
	// redemption slot for an offer (REDEEMED, PARTIALLY_USED or EXHAUSTED),
	// if any. Only EXPIRED coupons free the slot.
	FindActiveByUserAndOffer(ctx context.Context, userID, offerID uuid.UUID) (*entity.Coupon, error)

	// Create persists a new coupon. The underlying table carries a partial
	// unique index over (user_id, offer_id) for non-expired statuses; a
	// violation surfaces as ErrDuplicateCoupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// MarkExpired transitions a coupon to EXPIRED. Called lazily when a read
	// or use finds the validity window has passed.
	MarkExpired(ctx context.Context, id uuid.UUID) error

	// ConsumeUse atomically increments the coupon's use count with a single
	// conditional statement (uses = uses + 1 WHERE id = ? AND uses < usage_limit)
	// and transitions the status based on the resulting count. It returns the
	// new use count, or ErrNoUsesLeft when the coupon was already exhausted.
	// Concurrent calls can never push the count past the limit.
	ConsumeUse(ctx context.Context, id uuid.UUID) (int, error)

	// CreateUsage appends a consumption audit record.
	CreateUsage(ctx context.Context, usage *entity.CouponUsage) error

	// ListWithUsageByUser returns all of the user's coupons joined with offer
	// terms and cumulative usage, newest first.
	ListWithUsageByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CouponWithUsage, error)

	// ListValidByUser returns the user's active coupons whose own expiry and
	// whose offer's validity window both lie in the future.
	ListValidByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.CouponWithUsage, error)

	// SummarizeUsageByUser aggregates the user's consumption per offer.
	SummarizeUsageByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OfferUsageSummary, error)

	// SummarizeUsageByBusiness aggregates consumption per offer across all
	// offers owned by a business.
	SummarizeUsageByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.OfferUsageSummary, error)

	// ListEmployeeAudit joins a business's employees to the coupon uses they
	// recorded, newest first.
	ListEmployeeAudit(ctx context.Context, businessID uuid.UUID) ([]*entity.EmployeeCouponAudit, error)
}
