// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"timeclock/config"
	"timeclock/internal/delivery/http/middleware"
	"timeclock/internal/delivery/http/router/handler"
	"timeclock/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered,
// injected by Fx.
type RouterParams struct {
	fx.In

	Config           *config.Config
	UserHandler      *handler.UserHandler
	PunchHandler     *handler.PunchHandler
	TimesheetHandler *handler.TimesheetHandler
	LocationHandler  *handler.LocationHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	userHandler      *handler.UserHandler
	punchHandler     *handler.PunchHandler
	timesheetHandler *handler.TimesheetHandler
	locationHandler  *handler.LocationHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		userHandler:      params.UserHandler,
		punchHandler:     params.PunchHandler,
		timesheetHandler: params.TimesheetHandler,
		locationHandler:  params.LocationHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics endpoint
	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		path := r.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		e.GET(path, echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Employee routes that require authentication
	employeeGroup := e.Group("/employee")
	employeeGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		employeeGroup.GET("/profile", r.userHandler.GetProfile)

		employeeGroup.POST("/punch", r.punchHandler.Punch)
		employeeGroup.GET("/punch/today", r.punchHandler.DayStatus)

		employeeGroup.GET("/timesheet", r.timesheetHandler.Timesheet)
		employeeGroup.GET("/timesheet/export.xlsx", r.timesheetHandler.ExportXLSX)
		employeeGroup.GET("/timesheet/export.pdf", r.timesheetHandler.ExportPDF)

		employeeGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		employeeGroup.GET("/devices", r.deviceHandler.GetEmployeeDevices)
		employeeGroup.PUT("/devices/:id/token", r.deviceHandler.UpdateFCMToken)
		employeeGroup.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	// First check if logged in, then check for the admin role.
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/locations", r.locationHandler.ListLocations)
		adminGroup.POST("/locations", r.locationHandler.CreateLocation)
		adminGroup.PUT("/locations/:id", r.locationHandler.UpdateLocation)
		adminGroup.DELETE("/locations/:id", r.locationHandler.DeleteLocation)
		adminGroup.GET("/locations/:id/qr", r.locationHandler.StationQR)
	}
}
