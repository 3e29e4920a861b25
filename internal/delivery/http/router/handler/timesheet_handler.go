package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/infra/metrics"
	"timeclock/internal/usecase"
	"timeclock/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// TimesheetHandlerParams holds dependencies for TimesheetHandler, injected by Fx.
type TimesheetHandlerParams struct {
	fx.In

	TimesheetUC usecase.TimesheetUsecase
	Logger      *slog.Logger
}

// TimesheetHandler holds dependencies for timesheet-related handlers
type TimesheetHandler struct {
	timesheetUC usecase.TimesheetUsecase
	logger      *slog.Logger
}

// NewTimesheetHandler is the constructor for TimesheetHandler
func NewTimesheetHandler(params TimesheetHandlerParams) *TimesheetHandler {
	return &TimesheetHandler{
		timesheetUC: params.TimesheetUC,
		logger:      params.Logger,
	}
}

// Timesheet returns the authenticated employee's punch history between
// the "from" and "to" query dates (inclusive).
func (h *TimesheetHandler) Timesheet(c echo.Context) error {
	employeeID, err := h.getEmployeeID(c)
	if err != nil {
		return err
	}

	from, to, err := h.parseDateRange(c)
	if err != nil {
		return err
	}

	output, err := h.timesheetUC.Timesheet(c.Request().Context(), employeeID, from, to)
	if err != nil {
		return h.mapTimesheetError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Timesheet retrieved successfully")
}

// ExportXLSX streams the timesheet as an Excel workbook.
func (h *TimesheetHandler) ExportXLSX(c echo.Context) error {
	employeeID, err := h.getEmployeeID(c)
	if err != nil {
		return err
	}

	from, to, err := h.parseDateRange(c)
	if err != nil {
		return err
	}

	data, err := h.timesheetUC.ExportXLSX(c.Request().Context(), employeeID, from, to)
	if err != nil {
		metrics.IncExport("xlsx", metrics.ResultError)

		return h.mapTimesheetError(c, err)
	}

	metrics.IncExport("xlsx", metrics.ResultSuccess)

	filename := fmt.Sprintf("timesheet_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportPDF streams the timesheet as a PDF document.
func (h *TimesheetHandler) ExportPDF(c echo.Context) error {
	employeeID, err := h.getEmployeeID(c)
	if err != nil {
		return err
	}

	from, to, err := h.parseDateRange(c)
	if err != nil {
		return err
	}

	data, err := h.timesheetUC.ExportPDF(c.Request().Context(), employeeID, from, to)
	if err != nil {
		metrics.IncExport("pdf", metrics.ResultError)

		return h.mapTimesheetError(c, err)
	}

	metrics.IncExport("pdf", metrics.ResultSuccess)

	filename := fmt.Sprintf("timesheet_%s_%s.pdf", from.Format(dateLayout), to.Format(dateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "application/pdf", data)
}

// parseDateRange reads the "from" and "to" query parameters.
func (h *TimesheetHandler) parseDateRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, response.BadRequest(c, "INVALID_DATE", "Invalid 'from' date, expected YYYY-MM-DD")
	}

	to, err := time.Parse(dateLayout, c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, response.BadRequest(c, "INVALID_DATE", "Invalid 'to' date, expected YYYY-MM-DD")
	}

	return from, to, nil
}

func (h *TimesheetHandler) mapTimesheetError(c echo.Context, err error) error {
	if errors.Is(err, impl.ErrInvalidDateRange) {
		return response.BadRequest(c, "INVALID_DATE_RANGE", "The 'to' date precedes the 'from' date")
	}

	return response.HandleAppError(c, err)
}

// getEmployeeID extracts the employee ID from the context
func (h *TimesheetHandler) getEmployeeID(c echo.Context) (uuid.UUID, error) {
	employeeIDVal := c.Get("employeeID")
	employeeID, ok := employeeIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid employee ID in token")
	}

	return employeeID, nil
}
