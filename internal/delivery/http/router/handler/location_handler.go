package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/usecase"
	"timeclock/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for allowed-location admin handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// CreateLocationRequest represents the request body for registering an allowed location
type CreateLocationRequest struct {
	Name             string  `json:"name" validate:"required"`
	FullAddress      string  `json:"full_address" validate:"required"`
	Latitude         float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude        float64 `json:"longitude" validate:"min=-180,max=180"`
	BaseRadiusMeters float64 `json:"base_radius_meters" validate:"required,gt=0"`
	Active           bool    `json:"active"`
}

// UpdateLocationRequest represents the request body for updating an allowed location
type UpdateLocationRequest struct {
	Name             *string  `json:"name,omitempty"`
	FullAddress      *string  `json:"full_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	BaseRadiusMeters *float64 `json:"base_radius_meters,omitempty" validate:"omitempty,gt=0"`
	Active           *bool    `json:"active,omitempty"`
}

// ListLocations handles retrieving all allowed locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return h.mapLocationError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// CreateLocation handles registering a new allowed location
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddLocationInput{
		Name:             req.Name,
		FullAddress:      req.FullAddress,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		BaseRadiusMeters: req.BaseRadiusMeters,
		Active:           req.Active,
	}

	location, err := h.locationUC.AddLocation(c.Request().Context(), input)
	if err != nil {
		return h.mapLocationError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// UpdateLocation handles updating an allowed location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Name:             req.Name,
		FullAddress:      req.FullAddress,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		BaseRadiusMeters: req.BaseRadiusMeters,
		Active:           req.Active,
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), locationID, input)
	if err != nil {
		return h.mapLocationError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteLocation handles removing an allowed location
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), locationID); err != nil {
		return h.mapLocationError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted successfully"}, "Location deleted successfully")
}

// StationQR renders the printable punch-station QR code for a location
func (h *LocationHandler) StationQR(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	png, err := h.locationUC.StationQR(c.Request().Context(), locationID)
	if err != nil {
		return h.mapLocationError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", "station_"+locationID.String()+".png"))

	return c.Blob(http.StatusOK, "image/png", png)
}

// mapLocationError translates usecase sentinels to HTTP responses
func (h *LocationHandler) mapLocationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrLocationNotFound):
		return response.NotFound(c, "LOCATION_NOT_FOUND", "Location not found")
	case errors.Is(err, impl.ErrInvalidRadius):
		return response.BadRequest(c, "INVALID_RADIUS", "Base radius must be greater than zero")
	case errors.Is(err, impl.ErrInvalidCoordinate):
		return response.BadRequest(c, "INVALID_COORDINATE", "Coordinate out of range")
	default:
		return response.HandleAppError(c, err)
	}
}
