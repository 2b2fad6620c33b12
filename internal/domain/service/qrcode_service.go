package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateOrderQR encodes the WhatsApp order deep link as a PNG.
	GenerateOrderQR(link string) ([]byte, error)
}
