package model

import (
	"time"

	"github.com/google/uuid"
)

// AllowedLocationModel is the GORM-specific struct for the 'allowed_locations' table.
type AllowedLocationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name             string    `gorm:"type:varchar(100);not null"`
	FullAddress      string    `gorm:"type:text;not null"`
	Latitude         float64   `gorm:"type:decimal(10,8);not null"`
	Longitude        float64   `gorm:"type:decimal(11,8);not null"`
	BaseRadiusMeters float64   `gorm:"not null"`
	IsActive         bool      `gorm:"not null;default:true;index:idx_allowed_locations_on_active"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AllowedLocationModel) TableName() string {
	return "allowed_locations"
}
