package postgres

import (
	"context"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the domain.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// CreateDevice persists a new device for an employee.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.EmployeeDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEmployeeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "建立裝置資料失敗")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.EmployeeDevice, error) {
	var deviceM model.EmployeeDeviceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByEmployee retrieves all devices for an employee.
func (repo *deviceRepository) FindDevicesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeDevice, error) {
	var deviceModels []*model.EmployeeDeviceModel
	err := repo.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&deviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by employee")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByEmployee retrieves all active devices for an employee.
func (repo *deviceRepository) FindActiveDevicesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.EmployeeDevice, error) {
	var deviceModels []*model.EmployeeDeviceModel
	err := repo.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("created_at ASC").
		Find(&deviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by employee")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeDeviceModel{}).
		Where("id = ?", deviceID).
		Update("fcm_token", fcmToken)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device inactive by its ID.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM EmployeeDeviceModel to a domain EmployeeDevice entity.
func toDeviceDomain(data *model.EmployeeDeviceModel) *entity.EmployeeDevice {
	if data == nil {
		return nil
	}

	return &entity.EmployeeDevice{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toDeviceDomains(data []*model.EmployeeDeviceModel) []*entity.EmployeeDevice {
	devices := make([]*entity.EmployeeDevice, 0, len(data))
	for _, deviceM := range data {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// fromDeviceDomain converts a domain EmployeeDevice entity to a GORM EmployeeDeviceModel.
func fromDeviceDomain(data *entity.EmployeeDevice) *model.EmployeeDeviceModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeDeviceModel{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
