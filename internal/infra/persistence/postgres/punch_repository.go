package postgres

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// punchRepository implements the domain.PunchRepository interface.
type punchRepository struct {
	db *gorm.DB
}

// NewPunchRepository is the constructor for punchRepository.
func NewPunchRepository(db *gorm.DB) repository.PunchRepository {
	return &punchRepository{db: db}
}

// FindRecord retrieves the punch record for one employee-day.
func (repo *punchRepository) FindRecord(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.DayPunchRecord, error) {
	var recordM model.PunchRecordModel
	err := repo.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPunchRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find punch record")
	}

	return toPunchRecordDomain(&recordM), nil
}

// SaveRecord inserts or updates the punch record together with its freshly
// computed hour breakdown. The totals are stored for reporting queries but
// are always recomputed from the raw punch times before each save.
func (repo *punchRepository) SaveRecord(ctx context.Context, record *entity.DayPunchRecord, hours entity.HoursBreakdown) error {
	recordM := fromPunchRecordDomain(record, hours)

	if err := repo.db.WithContext(ctx).Save(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Two punches raced on the same employee-day; the caller retries
			// against the freshly stored row.
			return domainerrors.NewDatabaseExecuteError(err, "打卡紀錄已存在")
		}

		return domainerrors.NewDatabaseExecuteError(err, "儲存打卡紀錄失敗")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// ListRecordsByRange retrieves an employee's records between two dates
// (inclusive), ordered by date.
func (repo *punchRepository) ListRecordsByRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]*entity.DayPunchRecord, error) {
	var recordModels []*model.PunchRecordModel
	err := repo.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, from, to).
		Order("date ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list punch records by range")
	}

	records := make([]*entity.DayPunchRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toPunchRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toStampDomain converts stamp columns to a domain PunchStamp. An empty
// Time column means the punch has not been performed.
func toStampDomain(data model.PunchStampModel) *entity.PunchStamp {
	if data.Time == "" {
		return nil
	}

	return &entity.PunchStamp{
		Time:           data.Time,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		AccuracyMeters: data.AccuracyMeters,
		LocationName:   data.LocationName,
	}
}

func fromStampDomain(data *entity.PunchStamp) model.PunchStampModel {
	if data == nil {
		return model.PunchStampModel{}
	}

	return model.PunchStampModel{
		Time:           data.Time,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		AccuracyMeters: data.AccuracyMeters,
		LocationName:   data.LocationName,
	}
}

// toPunchRecordDomain converts a GORM PunchRecordModel to a domain DayPunchRecord entity.
func toPunchRecordDomain(data *model.PunchRecordModel) *entity.DayPunchRecord {
	if data == nil {
		return nil
	}

	return &entity.DayPunchRecord{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		Date:       data.Date,
		ClockIn:    toStampDomain(data.ClockIn),
		LunchStart: toStampDomain(data.LunchStart),
		LunchEnd:   toStampDomain(data.LunchEnd),
		ClockOut:   toStampDomain(data.ClockOut),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromPunchRecordDomain converts a domain DayPunchRecord entity to a GORM PunchRecordModel.
func fromPunchRecordDomain(data *entity.DayPunchRecord, hours entity.HoursBreakdown) *model.PunchRecordModel {
	if data == nil {
		return nil
	}

	return &model.PunchRecordModel{
		ID:            data.ID,
		EmployeeID:    data.EmployeeID,
		Date:          data.Date,
		ClockIn:       fromStampDomain(data.ClockIn),
		LunchStart:    fromStampDomain(data.LunchStart),
		LunchEnd:      fromStampDomain(data.LunchEnd),
		ClockOut:      fromStampDomain(data.ClockOut),
		TotalHours:    hours.TotalHours,
		NormalHours:   hours.NormalHours,
		OvertimeHours: hours.OvertimeHours,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
