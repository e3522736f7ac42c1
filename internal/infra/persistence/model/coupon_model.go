package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. The partial unique index over
// (user_id, offer_id) covers every non-expired status, so a user holds at
// most one coupon per offer until its window passes, even after exhausting
// it and even under concurrent redemption requests.
type CouponModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OfferID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uniq_held_coupon,where:status IN ('REDEEMED','PARTIALLY_USED','EXHAUSTED')"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uniq_held_coupon,where:status IN ('REDEEMED','PARTIALLY_USED','EXHAUSTED');index"`
	Status     string     `gorm:"type:varchar(32);not null"`
	Uses       int        `gorm:"not null;default:0"`
	UsageLimit int        `gorm:"not null"`
	ExpiresAt  time.Time  `gorm:"not null"`
	RedeemedAt time.Time  `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// CouponUsageModel mirrors the 'coupon_usages' table, an append-only audit
// log of individual consumption events.
type CouponUsageModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CouponID uuid.UUID `gorm:"type:uuid;not null;index"`
	UsedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	UsedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CouponUsageModel) TableName() string {
	return "coupon_usages"
}
