package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, employeeID uuid.UUID, deviceInfo *DeviceInfo) (*entity.EmployeeDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, employeeID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetEmployeeDevices retrieves all active devices for an employee
	GetEmployeeDevices(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, employeeID, deviceID uuid.UUID) error
}
