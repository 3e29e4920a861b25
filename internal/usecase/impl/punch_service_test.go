package impl

import (
	"context"
	"testing"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	mockRepo "timeclock/internal/mocks/repository"
	mockService "timeclock/internal/mocks/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type punchServiceMocks struct {
	punchRepo    *mockRepo.MockPunchRepository
	locationRepo *mockRepo.MockLocationRepository
	validator    *mockService.MockGeofenceValidator
	hours        *mockService.MockHoursCalculator
	acquirer     *mockService.MockPositionAcquirer
	oracle       *mockService.MockShiftWindowOracle
	clock        *mockService.MockClock
	publisher    *mockService.MockEventPublisher
	qrcode       *mockService.MockQRCodeService
}

func newPunchService(t *testing.T, cfg *config.Config) (usecase.PunchUsecase, punchServiceMocks) {
	t.Helper()

	m := punchServiceMocks{
		punchRepo:    mockRepo.NewMockPunchRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		validator:    mockService.NewMockGeofenceValidator(t),
		hours:        mockService.NewMockHoursCalculator(t),
		acquirer:     mockService.NewMockPositionAcquirer(t),
		oracle:       mockService.NewMockShiftWindowOracle(t),
		clock:        mockService.NewMockClock(t),
		publisher:    mockService.NewMockEventPublisher(t),
		qrcode:       mockService.NewMockQRCodeService(t),
	}

	reported := func(fix *entity.PositionFix) service.PositionAcquirer {
		acq := mockService.NewMockPositionAcquirer(t)
		acq.EXPECT().Acquire(mock.Anything).Return(fix, nil)

		return acq
	}

	svc := NewPunchService(
		m.punchRepo, m.locationRepo, m.validator, m.hours,
		m.acquirer, reported, m.oracle, m.clock, m.publisher, m.qrcode,
		newDiscardLogger(), cfg,
	)

	return svc, m
}

func punchTestConfig() *config.Config {
	return &config.Config{
		Timeclock: &config.TimeclockConfig{
			PunchCooldown:    5 * time.Minute,
			ShiftWindowStart: "07:00",
			ShiftWindowEnd:   "22:00",
			LocationCacheTTL: time.Minute,
		},
	}
}

func testOffice() *entity.AllowedLocation {
	return &entity.AllowedLocation{
		ID:               uuid.New(),
		Name:             "總公司",
		Coordinate:       entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654},
		BaseRadiusMeters: 100,
		Active:           true,
	}
}

func TestPunchService_Punch_ClockInSuccess(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 2, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	office := testOffice()

	fix := &entity.PositionFix{
		Coordinate:     office.Coordinate,
		AccuracyMeters: 15,
	}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
	m.acquirer.EXPECT().Acquire(ctx).Return(fix, nil)
	m.locationRepo.EXPECT().
		ListActiveLocations(ctx).
		Return([]*entity.AllowedLocation{office}, nil)
	m.validator.EXPECT().
		Validate(*fix, []*entity.AllowedLocation{office}).
		Return(entity.ValidationResult{
			Authorized:           true,
			MatchedLocation:      office,
			DistanceMeters:       4.2,
			AdaptiveRadiusMeters: 100,
			GPSAccuracyMeters:    15,
		})
	m.hours.EXPECT().
		FromRecord(mock.AnythingOfType("*entity.DayPunchRecord")).
		Return(entity.HoursBreakdown{})
	m.punchRepo.EXPECT().
		SaveRecord(ctx, mock.AnythingOfType("*entity.DayPunchRecord"), entity.HoursBreakdown{}).
		Return(nil)
	m.publisher.EXPECT().
		PublishPunchEvent(ctx, mock.AnythingOfType("*service.PunchEvent")).
		Return(nil)

	out, err := svc.Punch(ctx, employeeID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.PunchClockIn, out.Kind)
	assert.Equal(t, office, out.Location)
	require.NotNil(t, out.Record.ClockIn)
	assert.Equal(t, "09:02", out.Record.ClockIn.Time)
	assert.Equal(t, office.Name, out.Record.ClockIn.LocationName)
	assert.Equal(t, 15.0, out.Record.ClockIn.AccuracyMeters)
}

func TestPunchService_Punch_CooldownBlocksSecondPunch(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	office := testOffice()
	fix := &entity.PositionFix{Coordinate: office.Coordinate, AccuracyMeters: 10}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound).Once()
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil).Once()
	m.acquirer.EXPECT().Acquire(ctx).Return(fix, nil).Once()
	m.locationRepo.EXPECT().
		ListActiveLocations(ctx).
		Return([]*entity.AllowedLocation{office}, nil).Once()
	m.validator.EXPECT().
		Validate(*fix, []*entity.AllowedLocation{office}).
		Return(entity.ValidationResult{Authorized: true, MatchedLocation: office}).Once()
	m.hours.EXPECT().
		FromRecord(mock.AnythingOfType("*entity.DayPunchRecord")).
		Return(entity.HoursBreakdown{}).Once()
	m.punchRepo.EXPECT().
		SaveRecord(ctx, mock.AnythingOfType("*entity.DayPunchRecord"), entity.HoursBreakdown{}).
		Return(nil).Once()
	m.publisher.EXPECT().
		PublishPunchEvent(ctx, mock.AnythingOfType("*service.PunchEvent")).
		Return(nil).Once()

	_, err := svc.Punch(ctx, employeeID, nil)
	require.NoError(t, err)

	// Second punch right away must hit the cooldown gate before any
	// collaborator is consulted.
	_, err = svc.Punch(ctx, employeeID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COOLDOWN_ACTIVE", appErr.ErrorCode())
	assert.Equal(t, "retry in 300s", appErr.Details())
}

func TestPunchService_Punch_AllPunchesComplete(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	complete := &entity.DayPunchRecord{
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &entity.PunchStamp{Time: "09:00"},
		LunchStart: &entity.PunchStamp{Time: "12:00"},
		LunchEnd:   &entity.PunchStamp{Time: "13:00"},
		ClockOut:   &entity.PunchStamp{Time: "18:00"},
	}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().FindRecord(ctx, employeeID, date).Return(complete, nil)

	_, err := svc.Punch(ctx, employeeID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ALL_PUNCHES_COMPLETE", appErr.ErrorCode())
}

func TestPunchService_Punch_OutsideShiftWindow(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(false, nil)

	_, err := svc.Punch(ctx, employeeID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "OUTSIDE_SHIFT_WINDOW", appErr.ErrorCode())
}

func TestPunchService_Punch_GeofenceRejectionCarriesDiagnostics(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	office := testOffice()
	fix := &entity.PositionFix{AccuracyMeters: 20}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
	m.acquirer.EXPECT().Acquire(ctx).Return(fix, nil)
	m.locationRepo.EXPECT().
		ListActiveLocations(ctx).
		Return([]*entity.AllowedLocation{office}, nil)
	m.validator.EXPECT().
		Validate(*fix, []*entity.AllowedLocation{office}).
		Return(entity.ValidationResult{
			Authorized:           false,
			MatchedLocation:      office,
			DistanceMeters:       420,
			AdaptiveRadiusMeters: 100,
		})

	_, err := svc.Punch(ctx, employeeID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LOCATION_NOT_AUTHORIZED", appErr.ErrorCode())
	assert.Equal(t, "you are 420m from 總公司; allowed radius is 100m", appErr.Details())
}

func TestPunchService_Punch_NoActiveLocations(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	fix := &entity.PositionFix{AccuracyMeters: 20}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
	m.acquirer.EXPECT().Acquire(ctx).Return(fix, nil)
	m.locationRepo.EXPECT().ListActiveLocations(ctx).Return(nil, nil)

	_, err := svc.Punch(ctx, employeeID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NO_LOCATIONS_CONFIGURED", appErr.ErrorCode())
}

func TestPunchService_Punch_SensorFailureMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "permission denied", err: service.ErrPermissionDenied, wantCode: "SENSOR_PERMISSION_DENIED"},
		{name: "timeout", err: service.ErrSensorTimeout, wantCode: "SENSOR_TIMEOUT"},
		{name: "unavailable", err: service.ErrPositionUnavailable, wantCode: "SENSOR_POSITION_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPunchService(t, punchTestConfig())

			ctx := context.Background()
			employeeID := uuid.New()
			now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
			date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

			m.clock.EXPECT().Now().Return(now)
			m.punchRepo.EXPECT().
				FindRecord(ctx, employeeID, date).
				Return(nil, repository.ErrPunchRecordNotFound)
			m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
			m.acquirer.EXPECT().Acquire(ctx).Return(nil, tt.err)

			_, err := svc.Punch(ctx, employeeID, nil)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestPunchService_Punch_ReportedFixPreferred(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	office := testOffice()

	input := &usecase.PunchInput{
		Reported: &usecase.ReportedFix{
			Latitude:          office.Coordinate.Latitude,
			Longitude:         office.Coordinate.Longitude,
			AccuracyMeters:    12,
			CapturedAtEpochMs: now.Add(-time.Second).UnixMilli(),
		},
	}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
	// The station acquirer must not be consulted; the reported factory
	// supplies the acquirer instead.
	m.locationRepo.EXPECT().
		ListActiveLocations(ctx).
		Return([]*entity.AllowedLocation{office}, nil)
	m.validator.EXPECT().
		Validate(mock.AnythingOfType("entity.PositionFix"), []*entity.AllowedLocation{office}).
		Return(entity.ValidationResult{Authorized: true, MatchedLocation: office, GPSAccuracyMeters: 12})
	m.hours.EXPECT().
		FromRecord(mock.AnythingOfType("*entity.DayPunchRecord")).
		Return(entity.HoursBreakdown{})
	m.punchRepo.EXPECT().
		SaveRecord(ctx, mock.AnythingOfType("*entity.DayPunchRecord"), entity.HoursBreakdown{}).
		Return(nil)
	m.publisher.EXPECT().
		PublishPunchEvent(ctx, mock.AnythingOfType("*service.PunchEvent")).
		Return(nil)

	out, err := svc.Punch(ctx, employeeID, input)
	require.NoError(t, err)
	require.NotNil(t, out.Record.ClockIn)
	assert.Equal(t, 12.0, out.Record.ClockIn.AccuracyMeters)
}

func TestPunchService_Punch_StationQRPinsLocation(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	office := testOffice()
	fix := &entity.PositionFix{Coordinate: office.Coordinate, AccuracyMeters: 10}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
	m.acquirer.EXPECT().Acquire(ctx).Return(fix, nil)
	m.qrcode.EXPECT().ParseStationQR("station-qr-data").Return(office.ID, nil)
	m.locationRepo.EXPECT().FindLocationByID(ctx, office.ID).Return(office, nil)
	m.validator.EXPECT().
		Validate(*fix, []*entity.AllowedLocation{office}).
		Return(entity.ValidationResult{Authorized: true, MatchedLocation: office})
	m.hours.EXPECT().
		FromRecord(mock.AnythingOfType("*entity.DayPunchRecord")).
		Return(entity.HoursBreakdown{})
	m.punchRepo.EXPECT().
		SaveRecord(ctx, mock.AnythingOfType("*entity.DayPunchRecord"), entity.HoursBreakdown{}).
		Return(nil)
	m.publisher.EXPECT().
		PublishPunchEvent(ctx, mock.AnythingOfType("*service.PunchEvent")).
		Return(nil)

	out, err := svc.Punch(ctx, employeeID, &usecase.PunchInput{StationQR: "station-qr-data"})
	require.NoError(t, err)
	assert.Equal(t, office, out.Location)
}

func TestPunchService_Punch_PersistenceFailureDoesNotStartCooldown(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	office := testOffice()
	fix := &entity.PositionFix{Coordinate: office.Coordinate, AccuracyMeters: 10}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().
		FindRecord(ctx, employeeID, date).
		Return(nil, repository.ErrPunchRecordNotFound)
	m.oracle.EXPECT().InsideWindow(ctx, employeeID, now).Return(true, nil)
	m.acquirer.EXPECT().Acquire(ctx).Return(fix, nil)
	m.locationRepo.EXPECT().
		ListActiveLocations(ctx).
		Return([]*entity.AllowedLocation{office}, nil)
	m.validator.EXPECT().
		Validate(*fix, []*entity.AllowedLocation{office}).
		Return(entity.ValidationResult{Authorized: true, MatchedLocation: office})
	m.hours.EXPECT().
		FromRecord(mock.AnythingOfType("*entity.DayPunchRecord")).
		Return(entity.HoursBreakdown{})
	m.punchRepo.EXPECT().
		SaveRecord(ctx, mock.AnythingOfType("*entity.DayPunchRecord"), entity.HoursBreakdown{}).
		Return(assert.AnError)

	_, err := svc.Punch(ctx, employeeID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PUNCH_PERSIST_FAILED", appErr.ErrorCode())

	// A failed save must not arm the cooldown, or the employee would be
	// locked out of retrying.
	remaining, blocked := svc.(*punchService).cooldownRemaining(employeeID, now)
	assert.False(t, blocked)
	assert.Zero(t, remaining)
}

func TestPunchService_DayStatus(t *testing.T) {
	svc, m := newPunchService(t, punchTestConfig())

	ctx := context.Background()
	employeeID := uuid.New()
	now := time.Date(2025, 3, 10, 13, 5, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	record := &entity.DayPunchRecord{
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &entity.PunchStamp{Time: "09:00"},
		LunchStart: &entity.PunchStamp{Time: "12:00"},
	}

	m.clock.EXPECT().Now().Return(now)
	m.punchRepo.EXPECT().FindRecord(ctx, employeeID, date).Return(record, nil)
	m.hours.EXPECT().FromRecord(record).Return(entity.HoursBreakdown{})

	out, err := svc.DayStatus(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, entity.PunchLunchEnd, out.NextKind)
	assert.False(t, out.Complete)
	assert.Equal(t, record, out.Record)
}
