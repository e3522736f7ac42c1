package entity

import (
	"time"

	"github.com/google/uuid"
)

// CouponStatus represents the lifecycle state of a redeemed coupon.
type CouponStatus string

const (
	// CouponStatusRedeemed means the user has claimed the coupon but no use has been consumed yet.
	CouponStatusRedeemed CouponStatus = "REDEEMED"
	// CouponStatusPartiallyUsed means some but not all uses have been consumed.
	CouponStatusPartiallyUsed CouponStatus = "PARTIALLY_USED"
	// CouponStatusExhausted means every allowed use has been consumed.
	CouponStatusExhausted CouponStatus = "EXHAUSTED"
	// CouponStatusExpired means the coupon or its offer passed the validity window
	// before all uses were consumed. Expiry is detected lazily at read/use time.
	CouponStatusExpired CouponStatus = "EXPIRED"
)

// IsActive reports whether the status still allows further consumption.
func (s CouponStatus) IsActive() bool {
	switch s {
	case CouponStatusRedeemed, CouponStatusPartiallyUsed:
		return true
	default:
		return false
	}
}

// Coupon is a user's claim on an offer. It is created in REDEEMED state and
// moves forward only: REDEEMED -> PARTIALLY_USED -> EXHAUSTED, with EXPIRED
// as an orthogonal terminal state once the validity window passes.
type Coupon struct {
	ID         uuid.UUID
	OfferID    uuid.UUID
	UserID     uuid.UUID // The redeeming user.
	Status     CouponStatus
	Uses       int       // Uses consumed so far. Invariant: Uses <= UsageLimit.
	UsageLimit int       // Copied from the offer at redemption time.
	ExpiresAt  time.Time // The coupon's own expiry, set from the offer's ValidUntil at redemption.
	RedeemedAt time.Time
	UpdatedAt  time.Time
}

// IsExpired reports whether the coupon's own validity window has passed.
func (c *Coupon) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// StatusForUses returns the status a coupon should carry after consuming
// the given number of uses.
func StatusForUses(uses, limit int) CouponStatus {
	switch {
	case uses <= 0:
		return CouponStatusRedeemed
	case uses < limit:
		return CouponStatusPartiallyUsed
	default:
		return CouponStatusExhausted
	}
}

// CouponUsage is a single consumption event, recorded for auditing.
// UsedBy is the business-admin or employee account that consumed the use.
type CouponUsage struct {
	ID       uuid.UUID
	CouponID uuid.UUID
	UsedBy   uuid.UUID
	UsedAt   time.Time
}

// CouponWithUsage is a read model joining a coupon with its offer terms,
// returned by the user-facing usage listings.
type CouponWithUsage struct {
	Coupon     Coupon
	OfferTitle string
	BusinessID uuid.UUID
	UsesLeft   int
}

// OfferUsageSummary is a per-offer aggregate of coupon consumption.
type OfferUsageSummary struct {
	OfferID       uuid.UUID
	OfferTitle    string
	CouponsIssued int
	TotalUses     int
}

// EmployeeCouponAudit joins an employee account to a consumption event,
// backing the business-admin audit view.
type EmployeeCouponAudit struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	CouponID     uuid.UUID
	OfferTitle   string
	UsedAt       time.Time
}
