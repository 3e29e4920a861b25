package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterEmployeeInput defines the data required to register a new employee.
type RegisterEmployeeInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created employee's basic information.
type RegisterOutput struct {
	Employee *entity.Employee
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Employee     *entity.Employee
}

// UserUsecase defines the interface for employee account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterEmployee(ctx context.Context, input RegisterEmployeeInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error)
}
