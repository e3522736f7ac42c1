package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	couponID := uuid.New()

	png, err := svc.GenerateCouponQR(couponID)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParseCouponQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	couponID := uuid.New()

	payload, err := json.Marshal(QRCodeData{CouponID: couponID.String(), Type: "coupon"})
	require.NoError(t, err)

	parsed, err := svc.ParseCouponQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, couponID, parsed)
}

func TestQRCodeService_ParseCouponQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	payload, err := json.Marshal(QRCodeData{CouponID: uuid.New().String(), Type: "ticket"})
	require.NoError(t, err)

	parsed, err := svc.ParseCouponQR(string(payload))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_ParseCouponQR_InvalidPayload(t *testing.T) {
	svc := NewQRCodeService(256, "L")

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "plain text"},
		{name: "bad uuid", data: `{"coupon_id":"not-a-uuid","type":"coupon"}`},
		{name: "empty", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := svc.ParseCouponQR(tt.data)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsed)
		})
	}
}
