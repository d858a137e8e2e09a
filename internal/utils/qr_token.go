package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
)

// QRImageEndpoint renders a QR image for an arbitrary payload. The service
// never renders images itself; property cards only carry this URL.
const QRImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// GenerateQRToken generates a random token identifying a property for
// self-service tenant registration.
func GenerateQRToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}

// QRImageURL builds the external render URL for a property's QR token.
func QRImageURL(token string) string {
	return fmt.Sprintf("%s?size=240x240&data=%s", QRImageEndpoint, url.QueryEscape(token))
}
