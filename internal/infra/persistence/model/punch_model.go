package model

import (
	"time"

	"github.com/google/uuid"
)

// PunchStampModel holds one punch's columns inside a punch record row. An
// empty Time means the punch has not been performed yet.
type PunchStampModel struct {
	Time           string  `gorm:"type:varchar(5)"`
	Latitude       float64 `gorm:"type:decimal(10,8)"`
	Longitude      float64 `gorm:"type:decimal(11,8)"`
	AccuracyMeters float64
	LocationName   string `gorm:"type:varchar(100)"`
}

// PunchRecordModel is the GORM-specific struct for the 'punch_records'
// table. One row holds the four punches of one employee-day plus the hour
// totals computed from them.
type PunchRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_punch_records_on_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_punch_records_on_employee_date"`

	ClockIn    PunchStampModel `gorm:"embedded;embeddedPrefix:clock_in_"`
	LunchStart PunchStampModel `gorm:"embedded;embeddedPrefix:lunch_start_"`
	LunchEnd   PunchStampModel `gorm:"embedded;embeddedPrefix:lunch_end_"`
	ClockOut   PunchStampModel `gorm:"embedded;embeddedPrefix:clock_out_"`

	TotalHours    float64 `gorm:"not null;default:0"`
	NormalHours   float64 `gorm:"not null;default:0"`
	OvertimeHours float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PunchRecordModel) TableName() string {
	return "punch_records"
}
