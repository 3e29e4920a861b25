package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeDeviceModel is the GORM-specific struct for the 'employee_devices' table.
type EmployeeDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_devices_on_employee"`
	FCMToken   string    `gorm:"type:text;not null"`
	DeviceID   string    `gorm:"type:varchar(255);not null"`
	Platform   string    `gorm:"type:varchar(50);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeDeviceModel) TableName() string {
	return "employee_devices"
}
