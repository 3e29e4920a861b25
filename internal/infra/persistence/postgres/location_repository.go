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

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new allowed location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.AllowedLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "建立打卡地點失敗")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves an allowed location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.AllowedLocation, error) {
	var locationM model.AllowedLocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// ListLocations retrieves all allowed locations ordered by creation time.
func (repo *locationRepository) ListLocations(ctx context.Context) ([]*entity.AllowedLocation, error) {
	var locationModels []*model.AllowedLocationModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return toLocationDomains(locationModels), nil
}

// ListActiveLocations retrieves only the active allowed locations.
func (repo *locationRepository) ListActiveLocations(ctx context.Context) ([]*entity.AllowedLocation, error) {
	var locationModels []*model.AllowedLocationModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active locations")
	}

	return toLocationDomains(locationModels), nil
}

// UpdateLocation updates an existing allowed location.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.AllowedLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "更新打卡地點失敗")
	}

	// Update the entity with updated timestamp
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// DeleteLocation removes an allowed location by its ID.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AllowedLocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	// If no rows were affected, it means the location was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM AllowedLocationModel to a domain AllowedLocation entity.
func toLocationDomain(data *model.AllowedLocationModel) *entity.AllowedLocation {
	if data == nil {
		return nil
	}

	return &entity.AllowedLocation{
		ID:          data.ID,
		Name:        data.Name,
		FullAddress: data.FullAddress,
		Coordinate: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		BaseRadiusMeters: data.BaseRadiusMeters,
		Active:           data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toLocationDomains(data []*model.AllowedLocationModel) []*entity.AllowedLocation {
	locations := make([]*entity.AllowedLocation, 0, len(data))
	for _, locationM := range data {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations
}

// fromLocationDomain converts a domain AllowedLocation entity to a GORM AllowedLocationModel.
func fromLocationDomain(data *entity.AllowedLocation) *model.AllowedLocationModel {
	if data == nil {
		return nil
	}

	return &model.AllowedLocationModel{
		ID:               data.ID,
		Name:             data.Name,
		FullAddress:      data.FullAddress,
		Latitude:         data.Coordinate.Latitude,
		Longitude:        data.Coordinate.Longitude,
		BaseRadiusMeters: data.BaseRadiusMeters,
		IsActive:         data.Active,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
