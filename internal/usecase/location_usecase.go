package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLocationInput represents the input for registering an allowed location
type AddLocationInput struct {
	Name             string  `json:"name"`
	FullAddress      string  `json:"full_address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	BaseRadiusMeters float64 `json:"base_radius_meters"`
	Active           bool    `json:"active"`
}

// UpdateLocationInput represents the input for updating an allowed location
type UpdateLocationInput struct {
	Name             *string  `json:"name,omitempty"`
	FullAddress      *string  `json:"full_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	BaseRadiusMeters *float64 `json:"base_radius_meters,omitempty"`
	Active           *bool    `json:"active,omitempty"`
}

// LocationUsecase defines the interface for allowed-location administration
type LocationUsecase interface {
	ListLocations(ctx context.Context) ([]*entity.AllowedLocation, error)
	AddLocation(ctx context.Context, input *AddLocationInput) (*entity.AllowedLocation, error)
	UpdateLocation(ctx context.Context, locationID uuid.UUID, input *UpdateLocationInput) (*entity.AllowedLocation, error)
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error

	// StationQR renders the printable QR code that pins a punch station
	// to one allowed location.
	StationQR(ctx context.Context, locationID uuid.UUID) ([]byte, error)
}
