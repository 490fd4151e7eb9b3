package service

// QRCodeService defines the interface for generating share QR codes.
type QRCodeService interface {
	// GenerateShareQR renders a QR code PNG encoding the given share URL.
	GenerateShareQR(url string) ([]byte, error)
}
