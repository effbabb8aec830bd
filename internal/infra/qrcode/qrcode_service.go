// Package qrcode renders order receipts as QR code images.
package qrcode

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"mart/config"
	"mart/internal/domain/service"
	"mart/internal/errors"
)

const receiptType = "order_receipt"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ReceiptData is the payload encoded into a receipt QR code.
type ReceiptData struct {
	Type       string `json:"type"`
	OrderID    string `json:"order_id"`
	TotalPrice string `json:"total_price"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a QR code service from configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOrderReceiptQR encodes the receipt of an order as a PNG QR code.
func (s *qrcodeService) GenerateOrderReceiptQR(orderID int64, totalPrice string) ([]byte, error) {
	data := s.receiptData(orderID, totalPrice)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderReceiptQR parses scanned QR content and returns the order id.
func (s *qrcodeService) ParseOrderReceiptQR(qrData string) (int64, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != receiptType {
		return 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := strconv.ParseInt(data.OrderID, 10, 64)
	if err != nil || orderID <= 0 {
		return 0, errors.Errorf("failed to parse order ID: %q", data.OrderID)
	}

	return orderID, nil
}

func (s *qrcodeService) receiptData(orderID int64, totalPrice string) ReceiptData {
	id := strconv.FormatInt(orderID, 10)
	data := ReceiptData{
		Type:       receiptType,
		OrderID:    id,
		TotalPrice: totalPrice,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + id
	}

	return data
}
