// Package qrcode renders UPI payment intents as scannable PNG codes.
package qrcode

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/skip2/go-qrcode"

	"pureflow/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR encodes a upi://pay intent for the order as a PNG. The
// payment itself is a manual scan-and-pay honor flow; nothing verifies that
// the customer actually paid.
func (s *qrcodeService) GeneratePaymentQR(upiID, payeeName string, amount int, orderID string) ([]byte, error) {
	intent := PaymentIntent(upiID, payeeName, amount, orderID)

	qrCode, err := qrcode.New(intent, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// PaymentIntent builds the UPI deep-link string for a payment request.
func PaymentIntent(upiID, payeeName string, amount int, orderID string) string {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", payeeName)
	params.Set("am", strconv.Itoa(amount))
	params.Set("cu", "INR")
	params.Set("tn", "Order "+orderID)

	return "upi://pay?" + params.Encode()
}
