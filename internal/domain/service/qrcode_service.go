package service

// QRCodeService renders QR codes for links that are opened on a phone.
type QRCodeService interface {
	// GenerateURLQR encodes the URL as a PNG image.
	GenerateURLQR(url string) ([]byte, error)
}
