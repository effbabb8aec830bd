package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mart/config"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	assert.NotNil(t, svc)

	svc = NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})
	assert.Equal(t, 128, svc.(*qrcodeService).size)
}

func TestQRCodeService_GenerateOrderReceiptQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "")

	qrBytes, err := svc.GenerateOrderReceiptQR(7, "15000")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderReceiptQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M", "")

		qrBytes, err := svc.GenerateOrderReceiptQR(7, "15000")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ReceiptData(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://mart.example/orders/")

	data := svc.receiptData(7, "15000")
	assert.Equal(t, ReceiptData{
		Type:       "order_receipt",
		OrderID:    "7",
		TotalPrice: "15000",
		URL:        "https://mart.example/orders/7",
	}, data)
}

func TestQRCodeService_ParseOrderReceiptQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "")

	jsonData, err := json.Marshal(svc.receiptData(7, "15000"))
	require.NoError(t, err)

	orderID, err := svc.ParseOrderReceiptQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, int64(7), orderID)
}

func TestQRCodeService_ParseOrderReceiptQR_Invalid(t *testing.T) {
	svc := newQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"invalid type", `{"type":"subscription","order_id":"7"}`, "invalid QR code type"},
		{"invalid order id", `{"type":"order_receipt","order_id":"seven"}`, "failed to parse order ID"},
		{"non positive order id", `{"type":"order_receipt","order_id":"0"}`, "failed to parse order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderReceiptQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
