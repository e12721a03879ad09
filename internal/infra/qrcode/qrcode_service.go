package qrcode

import (
	"encoding/json"
	"fmt"

	"kidsactivity/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the payload embedded in an invitation QR code.
type QRCodeData struct {
	Token string `json:"token"`
	Type  string `json:"type"`
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

// GenerateInvitationQR renders a PNG QR code embedding the accept token.
func (s *qrcodeService) GenerateInvitationQR(token string) ([]byte, error) {
	data := QRCodeData{
		Token: token,
		Type:  "invitation",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInvitationQR extracts the accept token from scanned QR payload data.
func (s *qrcodeService) ParseInvitationQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "invitation" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.Token == "" {
		return "", fmt.Errorf("QR code carries no invitation token")
	}

	return data.Token, nil
}
