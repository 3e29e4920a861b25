// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/infra/metrics"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PunchHandlerParams holds dependencies for PunchHandler, injected by Fx.
type PunchHandlerParams struct {
	fx.In

	PunchUC usecase.PunchUsecase
	Logger  *slog.Logger
}

// PunchHandler holds dependencies for punch-related handlers
type PunchHandler struct {
	punchUC usecase.PunchUsecase
	logger  *slog.Logger
}

// NewPunchHandler is the constructor for PunchHandler
func NewPunchHandler(params PunchHandlerParams) *PunchHandler {
	return &PunchHandler{
		punchUC: params.PunchUC,
		logger:  params.Logger,
	}
}

// PunchRequest represents the request body for performing a punch.
// All fields are optional; the workflow decides the punch kind itself.
type PunchRequest struct {
	Reported  *ReportedFixRequest `json:"reported,omitempty"`
	StationQR string              `json:"station_qr,omitempty"`
}

// ReportedFixRequest is a client-captured GPS reading.
type ReportedFixRequest struct {
	Latitude          float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude         float64 `json:"longitude" validate:"min=-180,max=180"`
	AccuracyMeters    float64 `json:"accuracy_meters" validate:"min=0"`
	CapturedAtEpochMs int64   `json:"captured_at_epoch_ms"`
}

// Punch performs the next punch action for the authenticated employee.
func (h *PunchHandler) Punch(c echo.Context) error {
	employeeID, err := h.getEmployeeID(c)
	if err != nil {
		return err
	}

	var req PunchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid punch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.PunchInput{StationQR: req.StationQR}
	if req.Reported != nil {
		input.Reported = &usecase.ReportedFix{
			Latitude:          req.Reported.Latitude,
			Longitude:         req.Reported.Longitude,
			AccuracyMeters:    req.Reported.AccuracyMeters,
			CapturedAtEpochMs: req.Reported.CapturedAtEpochMs,
		}
	}

	start := time.Now()
	output, err := h.punchUC.Punch(c.Request().Context(), employeeID, input)
	if err != nil {
		metrics.ObservePunch("", metrics.ResultError, time.Since(start))

		return response.HandleAppError(c, err)
	}

	metrics.ObservePunch(output.Kind.String(), metrics.ResultSuccess, time.Since(start))

	return response.Success(c, http.StatusOK, output, "Punch recorded successfully")
}

// DayStatus reports the authenticated employee's punch record for today.
func (h *PunchHandler) DayStatus(c echo.Context) error {
	employeeID, err := h.getEmployeeID(c)
	if err != nil {
		return err
	}

	output, err := h.punchUC.DayStatus(c.Request().Context(), employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Day status retrieved successfully")
}

// getEmployeeID extracts the employee ID from the context
func (h *PunchHandler) getEmployeeID(c echo.Context) (uuid.UUID, error) {
	employeeIDVal := c.Get("employeeID")
	employeeID, ok := employeeIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid employee ID in token")
	}

	return employeeID, nil
}
