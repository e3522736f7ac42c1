package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a published deal scoped to a business. A user redeems an offer
// into a Coupon; the offer's validity window and usage limit are copied onto
// the coupon at redemption time.
type Offer struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Title           string
	Description     string
	DiscountPercent int       // Percentage discount the coupon grants, 1-100.
	UsageLimit      int       // How many times a single redeemed coupon may be consumed.
	ValidFrom       time.Time // Start of the redemption window.
	ValidUntil      time.Time // End of the redemption window; also the default coupon expiry.
	Published       bool      // Only published offers are publicly listed and redeemable.
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the offer can be redeemed at the given instant:
// published, not deleted and inside its validity window.
func (o *Offer) IsActive(now time.Time) bool {
	if !o.Published || o.DeletedAt != nil {
		return false
	}

	return !now.Before(o.ValidFrom) && now.Before(o.ValidUntil)
}
