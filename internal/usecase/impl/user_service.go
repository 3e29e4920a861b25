// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "timeclock/internal/delivery/context"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	employeeRepo repository.EmployeeRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	EmployeeRepo repository.EmployeeRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		employeeRepo: params.EmployeeRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterEmployee creates a new employee account with a hashed password.
func (srv *userService) RegisterEmployee(ctx context.Context, input usecase.RegisterEmployeeInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting employee registration", slog.String("email", input.Email))

	_, err := srv.employeeRepo.FindEmployeeByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmployeeAlreadyExists
	}
	if !errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         entity.RoleEmployee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.employeeRepo.CreateEmployee(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmployee) {
			return nil, domainerrors.ErrEmployeeAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create employee")
	}

	srv.log(ctx).Debug("Employee registration completed", slog.Any("employeeID", employee.ID))

	return &usecase.RegisterOutput{Employee: employee}, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	employee, err := srv.employeeRepo.FindEmployeeByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	if !srv.hasher.Check(input.Password, employee.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
		employee.ID,
		entity.Roles{employee.Role}.ToStrings(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Employee:     employee,
	}, nil
}

// GetProfile returns the employee's account information.
func (srv *userService) GetProfile(ctx context.Context, employeeID uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID")
	}

	return employee, nil
}
