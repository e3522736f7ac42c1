package usecase

import (
	"context"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// UseCouponOutput reports the result of consuming one use of a coupon.
type UseCouponOutput struct {
	Coupon   *entity.Coupon
	UsesLeft int
}

// CouponUsecase defines the coupon lifecycle: redemption, consumption and
// the reporting views built on the usage audit trail.
type CouponUsecase interface {
	// RedeemCoupon claims an active offer for a user. At most one active
	// coupon per (user, offer) can ever exist; a second redemption attempt
	// conflicts.
	RedeemCoupon(ctx context.Context, userID, offerID uuid.UUID) (*entity.Coupon, error)

	// UseCoupon consumes one use on behalf of the business owning the
	// coupon's offer. The consumer is the admin or employee account that
	// scanned the coupon.
	UseCoupon(ctx context.Context, consumerID, couponID uuid.UUID) (*UseCouponOutput, error)

	// GetRedeemedCoupons returns all of the user's coupons with offer terms
	// and cumulative usage, newest first.
	GetRedeemedCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.CouponWithUsage, error)

	// GetValidCoupons returns only the user's usable coupons: active status
	// and both the coupon's and the offer's validity windows still open.
	GetValidCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.CouponWithUsage, error)

	// GetCouponUsage aggregates the user's consumption per offer.
	GetCouponUsage(ctx context.Context, userID uuid.UUID) ([]*entity.OfferUsageSummary, error)

	// GetBusinessCouponUsage aggregates consumption across all offers of
	// the admin's business.
	GetBusinessCouponUsage(ctx context.Context, adminID uuid.UUID) ([]*entity.OfferUsageSummary, error)

	// GetEmployeeCouponHistory returns the per-employee consumption audit
	// for the admin's business.
	GetEmployeeCouponHistory(ctx context.Context, adminID uuid.UUID) ([]*entity.EmployeeCouponAudit, error)

	// CouponQR renders the PNG QR code a business scans to consume a use.
	// Only the coupon's owner may request it.
	CouponQR(ctx context.Context, userID, couponID uuid.UUID) ([]byte, error)
}
