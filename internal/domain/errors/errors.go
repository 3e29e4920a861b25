package errors

import (
	"fmt"
	"net/http"

	"timeclock/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Punch workflow rejections
	ErrAllPunchesComplete = NewBaseError(
		http.StatusConflict,
		"ALL_PUNCHES_COMPLETE",
		"今日打卡已全部完成",
		"",
	)

	ErrCooldownActive = NewBaseError(
		http.StatusTooManyRequests,
		"COOLDOWN_ACTIVE",
		"打卡間隔過短，請稍後再試",
		"",
	)

	ErrOutsideShiftWindow = NewBaseError(
		http.StatusForbidden,
		"OUTSIDE_SHIFT_WINDOW",
		"目前不在允許的班別時段內",
		"",
	)

	ErrLocationNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"LOCATION_NOT_AUTHORIZED",
		"您不在允許打卡的地點範圍內",
		"",
	)

	ErrNoLocationsConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"NO_LOCATIONS_CONFIGURED",
		"尚未設定允許打卡的地點，請聯絡管理員",
		"",
	)

	// Sensor-layer failures (surfaced after the retry budget is exhausted)
	ErrSensorPermissionDenied = NewBaseError(
		http.StatusUnprocessableEntity,
		"SENSOR_PERMISSION_DENIED",
		"無法取得定位權限，請開啟定位服務後重試",
		"",
	)

	ErrSensorPositionUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"SENSOR_POSITION_UNAVAILABLE",
		"無法取得定位，請確認 GPS 訊號後重試",
		"",
	)

	ErrSensorTimeout = NewBaseError(
		http.StatusUnprocessableEntity,
		"SENSOR_TIMEOUT",
		"定位逾時，請重試",
		"",
	)

	// Employee-related errors
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"找不到該員工",
		"",
	)

	ErrEmployeeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMPLOYEE_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"找不到該打卡地點",
		"",
	)

	ErrLocationRadiusInvalid = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_RADIUS_INVALID",
		"打卡半徑設定無效",
		"",
	)

	// Punch record errors
	ErrPunchRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"PUNCH_RECORD_NOT_FOUND",
		"找不到該打卡紀錄",
		"",
	)

	ErrPunchPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"PUNCH_PERSIST_FAILED",
		"儲存打卡紀錄失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error into an
// internal AppError while keeping the original message in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		message,
		err.Error(),
	)
}

// NewCooldownError returns a CooldownActive error carrying the remaining
// wait so the UI can display a countdown.
func NewCooldownError(remainingSeconds int) *BaseError {
	return ErrCooldownActive.WithDetails(
		fmt.Sprintf("retry in %ds", remainingSeconds),
	)
}

// NewGeofenceRejection returns a LocationNotAuthorized error with the
// distance/radius diagnostics of the closest allowed location.
func NewGeofenceRejection(locationName string, distanceMeters, adaptiveRadiusMeters float64) *BaseError {
	return ErrLocationNotAuthorized.WithDetails(fmt.Sprintf(
		"you are %.0fm from %s; allowed radius is %.0fm",
		distanceMeters, locationName, adaptiveRadiusMeters,
	))
}
