package service

// QRCodeService renders order receipts as QR codes.
type QRCodeService interface {
	// GenerateOrderReceiptQR returns a PNG encoding the receipt of an order.
	GenerateOrderReceiptQR(orderID int64, totalPrice string) ([]byte, error)

	// ParseOrderReceiptQR decodes scanned QR content back into the order id.
	ParseOrderReceiptQR(qrData string) (int64, error)
}
