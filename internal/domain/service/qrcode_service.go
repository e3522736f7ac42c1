package service

import "github.com/google/uuid"

// QRCodeService renders and parses the QR payloads printed on coupons.
type QRCodeService interface {
	// GenerateCouponQR renders a PNG QR code encoding the coupon identifier.
	GenerateCouponQR(couponID uuid.UUID) ([]byte, error)

	// ParseCouponQR extracts the coupon identifier from a scanned payload.
	ParseCouponQR(payload string) (uuid.UUID, error)
}
