// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// A single table carries identity, profile and verification state; employee
// accounts point at their employer through BusinessID.
type UserModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string     `gorm:"type:varchar(255);unique;not null"`
	Name           string     `gorm:"type:varchar(100)"`
	HashedPassword string     `gorm:"column:password;type:varchar(255);not null"`
	Number         *string    `gorm:"type:varchar(20);unique"`
	Address        string     `gorm:"type:text"`
	ProfilePhoto   string     `gorm:"type:varchar(512)"`
	Role           string     `gorm:"type:varchar(32);not null"`
	IsVerified     bool       `gorm:"not null;default:false"`
	OTP            *string    `gorm:"column:otp;type:varchar(10)"`
	AuthToken      *string    `gorm:"type:varchar(512);index"`
	BusinessID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
