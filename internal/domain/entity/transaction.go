package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the settlement state of a transaction record.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// IsValid checks if the TransactionStatus is a known value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	default:
		return false
	}
}

// Transaction is an append-mostly record of a monetary or usage event.
// Records are never deleted; a later status correction goes through an update.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID *uuid.UUID // Set when the event involved a business.
	CouponID   *uuid.UUID // Set when the event was backed by a coupon use.
	Amount     float64
	Status     TransactionStatus
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
