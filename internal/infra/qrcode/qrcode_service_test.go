package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
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

func TestQRCodeService_GenerateStationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	locationID := uuid.New()

	qrBytes, err := service.GenerateStationQR(locationID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseStationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	locationID := uuid.New()

	payload, err := json.Marshal(StationQRData{
		LocationID: locationID.String(),
		Type:       "punch_station",
	})
	require.NoError(t, err)

	parsed, err := service.ParseStationQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, locationID, parsed)
}

func TestQRCodeService_ParseStationQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(StationQRData{
		LocationID: uuid.New().String(),
		Type:       "subscription",
	})
	require.NoError(t, err)

	_, err = service.ParseStationQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseStationQR_MalformedData(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "this-is-not-json"},
		{"Empty string", ""},
		{"Bad UUID", `{"location_id":"not-a-uuid","type":"punch_station"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseStationQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}
