package impl

import (
	"context"
	"testing"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	mockRepo "timeclock/internal/mocks/repository"
	mockService "timeclock/internal/mocks/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	employeeRepo *mockRepo.MockEmployeeRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, userServiceMocks) {
	t.Helper()

	m := userServiceMocks{
		employeeRepo: mockRepo.NewMockEmployeeRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		EmployeeRepo: m.employeeRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestUserService_RegisterEmployee(t *testing.T) {
	svc, m := newUserService(t)

	m.employeeRepo.EXPECT().
		FindEmployeeByEmail(mock.Anything, "new@example.com").
		Return(nil, repository.ErrEmployeeNotFound)
	m.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	m.employeeRepo.EXPECT().
		CreateEmployee(mock.Anything, mock.AnythingOfType("*entity.Employee")).
		Return(nil)

	out, err := svc.RegisterEmployee(context.Background(), usecase.RegisterEmployeeInput{
		Name:     "王小明",
		Email:    "new@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.Employee.Email)
	assert.Equal(t, "hashed", out.Employee.PasswordHash)
	assert.Equal(t, entity.RoleEmployee, out.Employee.Role)
}

func TestUserService_RegisterEmployee_DuplicateEmail(t *testing.T) {
	svc, m := newUserService(t)

	existing := &entity.Employee{ID: uuid.New(), Email: "taken@example.com"}
	m.employeeRepo.EXPECT().
		FindEmployeeByEmail(mock.Anything, "taken@example.com").
		Return(existing, nil)

	_, err := svc.RegisterEmployee(context.Background(), usecase.RegisterEmployeeInput{
		Name:     "王小明",
		Email:    "taken@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestUserService_Login(t *testing.T) {
	svc, m := newUserService(t)

	employee := &entity.Employee{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleEmployee,
	}

	m.employeeRepo.EXPECT().
		FindEmployeeByEmail(mock.Anything, "user@example.com").
		Return(employee, nil)
	m.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
	m.tokenService.EXPECT().
		GenerateTokens(employee.ID, []string{"employee"}).
		Return("access", "refresh", nil)

	out, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, employee, out.Employee)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)

	employee := &entity.Employee{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed",
	}

	m.employeeRepo.EXPECT().
		FindEmployeeByEmail(mock.Anything, "user@example.com").
		Return(employee, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, m := newUserService(t)

	m.employeeRepo.EXPECT().
		FindEmployeeByEmail(mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrEmployeeNotFound)

	_, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_GetProfile(t *testing.T) {
	svc, m := newUserService(t)

	employee := &entity.Employee{ID: uuid.New(), Name: "王小明"}
	m.employeeRepo.EXPECT().FindEmployeeByID(mock.Anything, employee.ID).Return(employee, nil)

	got, err := svc.GetProfile(context.Background(), employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, m := newUserService(t)

	id := uuid.New()
	m.employeeRepo.EXPECT().
		FindEmployeeByID(mock.Anything, id).
		Return(nil, repository.ErrEmployeeNotFound)

	_, err := svc.GetProfile(context.Background(), id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", appErr.ErrorCode())
}
