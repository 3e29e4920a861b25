package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	"timeclock/internal/errors"
	"timeclock/internal/infra/metrics"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
)

const punchTimeLayout = "15:04"

// ReportedAcquirerFactory builds an acquirer over a client-reported
// reading so it passes through the same retry plan as station fixes.
type ReportedAcquirerFactory func(fix *entity.PositionFix) service.PositionAcquirer

type punchService struct {
	punchRepo    repository.PunchRepository
	locationRepo repository.LocationRepository
	validator    service.GeofenceValidator
	hours        service.HoursCalculator
	acquirer     service.PositionAcquirer
	reported     ReportedAcquirerFactory
	oracle       service.ShiftWindowOracle
	clock        service.Clock
	publisher    service.EventPublisher
	qrcode       service.QRCodeService
	logger       *slog.Logger
	cfg          *config.Config

	// lastPunch is the per-employee cooldown anchor. Last write wins when
	// two punches race; the loser is rejected on its next attempt.
	mu        sync.Mutex
	lastPunch map[string]time.Time

	// Allowed locations are refreshed through an explicit TTL cache so
	// every punch does not hit the database.
	cacheMu         sync.RWMutex
	cachedLocations []*entity.AllowedLocation
	cachedAt        time.Time
}

// NewPunchService assembles the punch workflow.
func NewPunchService(
	punchRepo repository.PunchRepository,
	locationRepo repository.LocationRepository,
	validator service.GeofenceValidator,
	hours service.HoursCalculator,
	acquirer service.PositionAcquirer,
	reported ReportedAcquirerFactory,
	oracle service.ShiftWindowOracle,
	clock service.Clock,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.PunchUsecase {
	// If Timeclock is not configured, provide a default configuration
	if cfg.Timeclock == nil {
		cfg.Timeclock = &config.TimeclockConfig{
			PunchCooldown:    5 * time.Minute,
			ShiftWindowStart: "07:00",
			ShiftWindowEnd:   "22:00",
			LocationCacheTTL: time.Minute,
		}
	}

	return &punchService{
		punchRepo:    punchRepo,
		locationRepo: locationRepo,
		validator:    validator,
		hours:        hours,
		acquirer:     acquirer,
		reported:     reported,
		oracle:       oracle,
		clock:        clock,
		publisher:    publisher,
		qrcode:       qrcode,
		logger:       logger,
		cfg:          cfg,
		lastPunch:    make(map[string]time.Time),
	}
}

// Punch performs the next punch action for the employee: cooldown and
// shift-window gates, position acquisition, geofence validation, stamp,
// hour recomputation and persistence, then the punch event.
func (s *punchService) Punch(ctx context.Context, employeeID uuid.UUID, input *usecase.PunchInput) (*usecase.PunchOutput, error) {
	if input == nil {
		input = &usecase.PunchInput{}
	}

	now := s.clock.Now()

	if remaining, blocked := s.cooldownRemaining(employeeID, now); blocked {
		return nil, domainerrors.NewCooldownError(remaining)
	}

	record, err := s.loadOrCreateRecord(ctx, employeeID, now)
	if err != nil {
		return nil, err
	}

	kind, ok := record.NextPunch()
	if !ok {
		return nil, domainerrors.ErrAllPunchesComplete
	}

	inside, err := s.oracle.InsideWindow(ctx, employeeID, now)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	if !inside {
		return nil, domainerrors.ErrOutsideShiftWindow
	}

	fix, err := s.acquireFix(ctx, input)
	if err != nil {
		return nil, err
	}

	locations, err := s.candidateLocations(ctx, input.StationQR)
	if err != nil {
		return nil, err
	}

	result := s.validator.Validate(*fix, locations)
	if !result.Authorized {
		if result.MatchedLocation == nil {
			return nil, domainerrors.ErrNoLocationsConfigured
		}

		s.logger.Info("punch rejected by geofence",
			slog.String("employee_id", employeeID.String()),
			slog.String("kind", kind.String()),
			slog.String("closest", result.MatchedLocation.Name),
			slog.Float64("distance_m", result.DistanceMeters),
			slog.Float64("radius_m", result.AdaptiveRadiusMeters),
		)

		metrics.IncGeofenceRejection(result.MatchedLocation.Name)

		return nil, domainerrors.NewGeofenceRejection(
			result.MatchedLocation.Name,
			result.DistanceMeters,
			result.AdaptiveRadiusMeters,
		)
	}

	record.SetStamp(kind, &entity.PunchStamp{
		Time:           now.Format(punchTimeLayout),
		Latitude:       fix.Coordinate.Latitude,
		Longitude:      fix.Coordinate.Longitude,
		AccuracyMeters: fix.AccuracyMeters,
		LocationName:   result.MatchedLocation.Name,
	})
	record.UpdatedAt = now

	// Hour totals are always recomputed from the four raw punch times,
	// never read back from storage.
	hours := s.hours.FromRecord(record)

	if err := s.punchRepo.SaveRecord(ctx, record, hours); err != nil {
		return nil, domainerrors.ErrPunchPersistFailed.WithDetails(err.Error())
	}

	s.startCooldown(employeeID, now)
	s.publishPunchEvent(ctx, employeeID, record, kind, result, hours)

	return &usecase.PunchOutput{
		Kind:                 kind,
		Record:               record,
		Hours:                hours,
		Location:             result.MatchedLocation,
		DistanceMeters:       result.DistanceMeters,
		AdaptiveRadiusMeters: result.AdaptiveRadiusMeters,
	}, nil
}

// DayStatus reports the employee's punch record for today.
func (s *punchService) DayStatus(ctx context.Context, employeeID uuid.UUID) (*usecase.DayStatusOutput, error) {
	record, err := s.loadOrCreateRecord(ctx, employeeID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	next, ok := record.NextPunch()

	return &usecase.DayStatusOutput{
		Record:   record,
		Hours:    s.hours.FromRecord(record),
		NextKind: next,
		Complete: !ok,
	}, nil
}

// cooldownRemaining reports the seconds left before the employee may
// punch again. Zero remaining means the gate is open.
func (s *punchService) cooldownRemaining(employeeID uuid.UUID, now time.Time) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.lastPunch[employeeID.String()]
	if !ok {
		return 0, false
	}

	elapsed := now.Sub(last)
	if elapsed >= s.cfg.Timeclock.PunchCooldown {
		return 0, false
	}

	remaining := s.cfg.Timeclock.PunchCooldown - elapsed

	return int(math.Ceil(remaining.Seconds())), true
}

func (s *punchService) startCooldown(employeeID uuid.UUID, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastPunch[employeeID.String()] = now
}

func (s *punchService) loadOrCreateRecord(ctx context.Context, employeeID uuid.UUID, now time.Time) (*entity.DayPunchRecord, error) {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	record, err := s.punchRepo.FindRecord(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, repository.ErrPunchRecordNotFound) {
			return &entity.DayPunchRecord{
				ID:         uuid.New(),
				EmployeeID: employeeID,
				Date:       date,
				CreatedAt:  now,
				UpdatedAt:  now,
			}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "讀取打卡紀錄失敗")
	}

	return record, nil
}

// acquireFix obtains the position for this punch. A client-reported
// reading is preferred and runs through the same retry plan; otherwise
// the station sensor path is used.
func (s *punchService) acquireFix(ctx context.Context, input *usecase.PunchInput) (*entity.PositionFix, error) {
	acquirer := s.acquirer
	if input.Reported != nil {
		acquirer = s.reported(&entity.PositionFix{
			Coordinate: entity.Coordinate{
				Latitude:  input.Reported.Latitude,
				Longitude: input.Reported.Longitude,
			},
			AccuracyMeters: input.Reported.AccuracyMeters,
			CapturedAt:     input.Reported.CapturedAtEpochMs,
		})
	}

	fix, err := acquirer.Acquire(ctx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			return nil, domainerrors.ErrSensorPermissionDenied
		case errors.Is(err, service.ErrSensorTimeout):
			return nil, domainerrors.ErrSensorTimeout
		default:
			return nil, domainerrors.ErrSensorPositionUnavailable.WithDetails(err.Error())
		}
	}

	return fix, nil
}

// candidateLocations resolves the locations this punch is validated
// against: the QR-pinned station when one was scanned, otherwise all
// active locations through the TTL cache.
func (s *punchService) candidateLocations(ctx context.Context, stationQR string) ([]*entity.AllowedLocation, error) {
	if stationQR != "" {
		locationID, err := s.qrcode.ParseStationQR(stationQR)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		location, err := s.locationRepo.FindLocationByID(ctx, locationID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return nil, domainerrors.ErrLocationNotFound
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "讀取打卡地點失敗")
		}

		return []*entity.AllowedLocation{location}, nil
	}

	return s.activeLocations(ctx)
}

func (s *punchService) activeLocations(ctx context.Context) ([]*entity.AllowedLocation, error) {
	ttl := s.cfg.Timeclock.LocationCacheTTL

	s.cacheMu.RLock()
	if ttl > 0 && !s.cachedAt.IsZero() && s.clock.Now().Sub(s.cachedAt) < ttl {
		cached := s.cachedLocations
		s.cacheMu.RUnlock()

		return cached, nil
	}
	s.cacheMu.RUnlock()

	locations, err := s.locationRepo.ListActiveLocations(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "讀取打卡地點失敗")
	}

	if len(locations) == 0 {
		return nil, domainerrors.ErrNoLocationsConfigured
	}

	s.cacheMu.Lock()
	s.cachedLocations = locations
	s.cachedAt = s.clock.Now()
	s.cacheMu.Unlock()

	return locations, nil
}

// publishPunchEvent hands the punch to the async pipeline. Publishing is
// best effort; a broker outage must not undo a stored punch.
func (s *punchService) publishPunchEvent(
	ctx context.Context,
	employeeID uuid.UUID,
	record *entity.DayPunchRecord,
	kind entity.PunchKind,
	result entity.ValidationResult,
	hours entity.HoursBreakdown,
) {
	event := &service.PunchEvent{
		EmployeeID:     employeeID.String(),
		Date:           record.Date.Format("2006-01-02"),
		Kind:           kind.String(),
		Time:           record.TimeOf(kind),
		LocationName:   result.MatchedLocation.Name,
		Latitude:       result.MatchedLocation.Coordinate.Latitude,
		Longitude:      result.MatchedLocation.Coordinate.Longitude,
		AccuracyMeters: result.GPSAccuracyMeters,
		TotalHours:     hours.TotalHours,
		OvertimeHours:  hours.OvertimeHours,
	}

	if err := s.publisher.PublishPunchEvent(ctx, event); err != nil {
		metrics.IncEventPublished(metrics.ResultError)
		s.logger.Error("failed to publish punch event",
			slog.String("employee_id", event.EmployeeID),
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)

		return
	}

	metrics.IncEventPublished(metrics.ResultSuccess)
}
