package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for punch-station QR code generation
// and parsing. A station QR pins a punch request to one allowed location.
type QRCodeService interface {
	// GenerateStationQR generates a QR code image for an allowed location.
	GenerateStationQR(locationID uuid.UUID) ([]byte, error)

	// ParseStationQR parses scanned QR data and returns the location ID.
	ParseStationQR(qrData string) (uuid.UUID, error)
}
