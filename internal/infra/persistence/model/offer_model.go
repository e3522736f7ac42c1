package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table. Offers are soft-deleted: coupon
// history references them, so rows are flagged rather than removed.
type OfferModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text"`
	DiscountPercent int        `gorm:"not null"`
	UsageLimit      int        `gorm:"not null;default:1"`
	ValidFrom       time.Time  `gorm:"not null"`
	ValidUntil      time.Time  `gorm:"not null"`
	Published       bool       `gorm:"not null;default:false;index"`
	DeletedAt       *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
