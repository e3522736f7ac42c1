package service

import (
	"context"
	"time"
)

// Coupon lifecycle event types emitted on the event bus.
const (
	EventCouponRedeemed  = "coupon.redeemed"
	EventCouponUsed      = "coupon.used"
	EventCouponExhausted = "coupon.exhausted"
	EventCouponExpired   = "coupon.expired"
)

// CouponEvent describes a state change in a coupon's lifecycle.
type CouponEvent struct {
	Type       string    `json:"type"`
	CouponID   string    `json:"coupon_id"`
	OfferID    string    `json:"offer_id"`
	UserID     string    `json:"user_id"`
	BusinessID string    `json:"business_id,omitempty"`
	Uses       int       `json:"uses"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes coupon lifecycle events for downstream consumers.
// Publishing is best-effort; failures must not abort the triggering operation.
type EventPublisher interface {
	PublishCouponEvent(ctx context.Context, event *CouponEvent) error

	// Close flushes pending messages and releases the underlying connection.
	Close() error
}
