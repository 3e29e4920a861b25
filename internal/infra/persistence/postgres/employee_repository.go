// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// employeeRepository implements the domain.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// CreateEmployee persists a new employee.
func (repo *employeeRepository) CreateEmployee(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmployee
		}

		return domainerrors.NewDatabaseExecuteError(err, "建立員工資料失敗")
	}

	// Update the entity with generated values
	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// FindEmployeeByID retrieves an employee by ID.
func (repo *employeeRepository) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindEmployeeByEmail retrieves an employee by login email.
func (repo *employeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&employeeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	return toEmployeeDomain(&employeeM), nil
}

// --- Mapper Functions ---

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
