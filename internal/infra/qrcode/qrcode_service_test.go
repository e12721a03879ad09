package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInvitationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateInvitationQR("tok_abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseInvitationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{Token: "tok_abc123", Type: "invitation"})
	require.NoError(t, err)

	token, err := service.ParseInvitationQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "tok_abc123", token)
}

func TestQRCodeService_ParseInvitationQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Wrong type field
	payload, err := json.Marshal(QRCodeData{Token: "tok", Type: "subscription"})
	require.NoError(t, err)
	_, err = service.ParseInvitationQR(string(payload))
	assert.Error(t, err)

	// Missing token
	payload, err = json.Marshal(QRCodeData{Type: "invitation"})
	require.NoError(t, err)
	_, err = service.ParseInvitationQR(string(payload))
	assert.Error(t, err)

	// Not JSON at all
	_, err = service.ParseInvitationQR("not-json")
	assert.Error(t, err)
}
