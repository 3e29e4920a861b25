package qrcode

import (
	"encoding/json"
	"fmt"

	"timeclock/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// StationQRData is the payload encoded into a punch-station QR code.
type StationQRData struct {
	LocationID string `json:"location_id"`
	Type       string `json:"type"`
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

// GenerateStationQR generates the printable QR code for a punch station
func (s *qrcodeService) GenerateStationQR(locationID uuid.UUID) ([]byte, error) {
	// Create QR code data
	data := StationQRData{
		LocationID: locationID.String(),
		Type:       "punch_station",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStationQR parses scanned QR data and returns the allowed-location ID
func (s *qrcodeService) ParseStationQR(qrData string) (uuid.UUID, error) {
	var data StationQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "punch_station" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	locationID, err := uuid.Parse(data.LocationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse location ID: %w", err)
	}

	return locationID, nil
}
