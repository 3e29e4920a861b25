// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for an employee.
	CreateDevice(ctx context.Context, device *entity.EmployeeDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.EmployeeDevice, error)

	// FindDevicesByEmployee retrieves all devices for an employee.
	FindDevicesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeDevice, error)

	// FindActiveDevicesByEmployee retrieves all active devices for an employee.
	FindActiveDevicesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device inactive by its ID.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
