package impl

import (
	"context"
	"errors"
	"fmt"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrLocationNotFound is returned when an allowed location is not found
	ErrLocationNotFound = errors.New("location not found")
	// ErrInvalidRadius is returned when the base radius is not a positive number
	ErrInvalidRadius = errors.New("base radius must be greater than zero")
	// ErrInvalidCoordinate is returned when latitude or longitude is out of range
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)

type locationService struct {
	locationRepo repository.LocationRepository
	qrcode       service.QRCodeService
	clock        service.Clock
}

// NewLocationService creates a new allowed-location administration service
func NewLocationService(
	locationRepo repository.LocationRepository,
	qrcode service.QRCodeService,
	clock service.Clock,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		qrcode:       qrcode,
		clock:        clock,
	}
}

// ListLocations retrieves all allowed locations, active or not
func (s *locationService) ListLocations(ctx context.Context) ([]*entity.AllowedLocation, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return locations, nil
}

// AddLocation registers a new allowed location
func (s *locationService) AddLocation(ctx context.Context, input *usecase.AddLocationInput) (*entity.AllowedLocation, error) {
	if input.BaseRadiusMeters <= 0 {
		return nil, ErrInvalidRadius
	}
	if !validCoordinate(input.Latitude, input.Longitude) {
		return nil, ErrInvalidCoordinate
	}

	now := s.clock.Now()
	location := &entity.AllowedLocation{
		ID:          uuid.New(),
		Name:        input.Name,
		FullAddress: input.FullAddress,
		Coordinate: entity.Coordinate{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		BaseRadiusMeters: input.BaseRadiusMeters,
		Active:           input.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return location, nil
}

// UpdateLocation updates an existing allowed location
func (s *locationService) UpdateLocation(ctx context.Context, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.AllowedLocation, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}

	if err := s.applyLocationUpdates(location, input); err != nil {
		return nil, err
	}

	if err := s.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return location, nil
}

// applyLocationUpdates applies the update input to a location
func (s *locationService) applyLocationUpdates(location *entity.AllowedLocation, input *usecase.UpdateLocationInput) error {
	if input.BaseRadiusMeters != nil && *input.BaseRadiusMeters <= 0 {
		return ErrInvalidRadius
	}

	lat := location.Coordinate.Latitude
	lng := location.Coordinate.Longitude
	if input.Latitude != nil {
		lat = *input.Latitude
	}
	if input.Longitude != nil {
		lng = *input.Longitude
	}
	if !validCoordinate(lat, lng) {
		return ErrInvalidCoordinate
	}

	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.FullAddress != nil {
		location.FullAddress = *input.FullAddress
	}
	location.Coordinate.Latitude = lat
	location.Coordinate.Longitude = lng
	if input.BaseRadiusMeters != nil {
		location.BaseRadiusMeters = *input.BaseRadiusMeters
	}
	if input.Active != nil {
		location.Active = *input.Active
	}
	location.UpdatedAt = s.clock.Now()

	return nil
}

// DeleteLocation removes an allowed location
func (s *locationService) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	if _, err := s.locationRepo.FindLocationByID(ctx, locationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return ErrLocationNotFound
		}

		return fmt.Errorf("failed to find location by ID: %w", err)
	}

	if err := s.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

// StationQR renders the printable QR code for a punch station
func (s *locationService) StationQR(ctx context.Context, locationID uuid.UUID) ([]byte, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}

	png, err := s.qrcode.GenerateStationQR(location.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate station QR: %w", err)
	}

	return png, nil
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
