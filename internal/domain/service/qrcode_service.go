package service

// QRCodeService defines the interface for invitation QR code generation and
// parsing. The QR payload carries the invitation accept token so another
// parent can accept a share in person by scanning.
type QRCodeService interface {
	// GenerateInvitationQR renders a PNG QR code embedding the accept token.
	GenerateInvitationQR(token string) ([]byte, error)

	// ParseInvitationQR extracts the accept token from scanned QR payload data.
	ParseInvitationQR(qrData string) (string, error)
}
