package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. Each business is owned by
// exactly one business-admin account.
type BusinessModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	City      string    `gorm:"type:varchar(100)"`
	State     string    `gorm:"type:varchar(100)"`
	Country   string    `gorm:"type:varchar(100)"`
	Pincode   string    `gorm:"type:varchar(20)"`
	Logo      string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
