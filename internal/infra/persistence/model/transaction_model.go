package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table. Records are never
// deleted; status corrections go through updates.
type TransactionModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID *uuid.UUID `gorm:"type:uuid;index"`
	CouponID   *uuid.UUID `gorm:"type:uuid;index"`
	Amount     float64    `gorm:"type:numeric(12,2);not null"`
	Status     string     `gorm:"type:varchar(32);not null"`
	Note       string     `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
