package service

// QRCodeService renders a payment-intent string as a scannable image. No error
// path is modeled for the content itself — a malformed intent simply produces
// a code nobody can pay with, which is visually acceptable.
type QRCodeService interface {
	// GeneratePaymentQR encodes a UPI payment intent for the given order as a
	// PNG image.
	GeneratePaymentQR(upiID, payeeName string, amount int, orderID string) ([]byte, error)
}
