package main

import (
	"context"
	"log/slog"
	"os"

	"timeclock/config"
	"timeclock/internal/delivery"
	"timeclock/internal/delivery/http"
	"timeclock/internal/delivery/http/middleware"
	"timeclock/internal/delivery/http/router/handler"
	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	"timeclock/internal/infra/auth"
	"timeclock/internal/infra/clock"
	"timeclock/internal/infra/export"
	"timeclock/internal/infra/geofence"
	logs "timeclock/internal/infra/log"
	"timeclock/internal/infra/metrics"
	"timeclock/internal/infra/persistence/postgres"
	"timeclock/internal/infra/pubsub"
	"timeclock/internal/infra/qrcode"
	"timeclock/internal/infra/sensor"
	"timeclock/internal/infra/shift"
	"timeclock/internal/infra/workhours"
	"timeclock/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			initMetrics,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEmployeeRepository,
			postgres.NewLocationRepository,
			postgres.NewPunchRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			clock.NewSystemClock,
			geofence.NewValidator,
			workhours.NewCalculator,
			export.NewTimesheetExporter,
			newQRCodeService,
			newShiftWindowOracle,
			newStationAcquirer,
			newReportedAcquirerFactory,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newShiftWindowOracle builds the daily punch window from configuration
func newShiftWindowOracle(cfg *config.Config) (service.ShiftWindowOracle, error) {
	start, end := "07:00", "22:00"
	if cfg.Timeclock != nil {
		if cfg.Timeclock.ShiftWindowStart != "" {
			start = cfg.Timeclock.ShiftWindowStart
		}
		if cfg.Timeclock.ShiftWindowEnd != "" {
			end = cfg.Timeclock.ShiftWindowEnd
		}
	}

	return shift.NewWindowOracle(start, end)
}

// newStationAcquirer wires the station GPS agent behind the retry plan
func newStationAcquirer(cfg *config.Config, logger *slog.Logger) service.PositionAcquirer {
	endpoint := ""
	if cfg.Sensor != nil {
		endpoint = cfg.Sensor.AgentEndpoint
	}

	return sensor.NewAcquirer(sensor.NewAgentSensor(endpoint, logger))
}

// newReportedAcquirerFactory runs client-reported readings through the
// same retry plan as station fixes
func newReportedAcquirerFactory(clk service.Clock) impl.ReportedAcquirerFactory {
	return func(fix *entity.PositionFix) service.PositionAcquirer {
		return sensor.NewAcquirer(sensor.NewReportedSensor(fix, clk))
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPunchService,
			impl.NewLocationService,
			impl.NewDeviceService,
			impl.NewTimesheetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPunchHandler,
			handler.NewTimesheetHandler,
			handler.NewLocationHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func initMetrics(cfg *config.Config) {
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metrics.Init()
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
