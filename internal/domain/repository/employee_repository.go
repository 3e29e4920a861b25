// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for employee persistence.
var (
	// ErrEmployeeNotFound is returned when an employee is not found.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmployee is returned when the email is already registered.
	ErrDuplicateEmployee = errors.New("employee already exists")
)

// EmployeeRepository defines the interface for employee-related database operations.
type EmployeeRepository interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, employee *entity.Employee) error

	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindEmployeeByEmail retrieves an employee by login email.
	FindEmployeeByEmail(ctx context.Context, email string) (*entity.Employee, error)
}
