package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JobModel struct {
	JobID         uuid.UUID `gorm:"column:job_id;type:uuid;default:gen_random_uuid();primaryKey" json:"job_id"`
	JobEmployerID uuid.UUID `gorm:"column:job_employer_id;type:uuid;not null;index" json:"job_employer_id"`
	JobOutletID   uuid.UUID `gorm:"column:job_outlet_id;type:uuid;not null;index" json:"job_outlet_id"`

	JobTitle string         `gorm:"column:job_title;type:varchar(200);not null" json:"job_title"`
	JobDate  time.Time      `gorm:"column:job_date;type:date;not null;index" json:"job_date"`
	JobTags  pq.StringArray `gorm:"column:job_tags;type:text[]" json:"job_tags"`

	// Server-authoritative; clients only display what comes back.
	JobStatus string `gorm:"column:job_status;type:job_status;not null;default:'pending';index" json:"job_status"`

	JobShifts []ShiftModel `gorm:"foreignKey:ShiftJobID;references:JobID" json:"job_shifts"`

	JobCreatedAt time.Time `gorm:"column:job_created_at;autoCreateTime" json:"job_created_at"`
	JobUpdatedAt time.Time `gorm:"column:job_updated_at;autoUpdateTime" json:"job_updated_at"`
}

func (JobModel) TableName() string { return "jobs" }

type ShiftModel struct {
	ShiftID    uuid.UUID `gorm:"column:shift_id;type:uuid;default:gen_random_uuid();primaryKey" json:"shift_id"`
	ShiftJobID uuid.UUID `gorm:"column:shift_job_id;type:uuid;not null;index" json:"shift_job_id"`

	ShiftStartTime time.Time `gorm:"column:shift_start_time;not null" json:"shift_start_time"`
	ShiftEndTime   time.Time `gorm:"column:shift_end_time;not null" json:"shift_end_time"`

	ShiftVacancy int `gorm:"column:shift_vacancy;not null;check:shift_vacancy >= 1" json:"shift_vacancy"`
	ShiftStandby int `gorm:"column:shift_standby;not null;default:0;check:shift_standby >= 0" json:"shift_standby"`

	ShiftBreakMinutes int  `gorm:"column:shift_break_minutes;not null;default:0;check:shift_break_minutes >= 0" json:"shift_break_minutes"`
	ShiftBreakPaid    bool `gorm:"column:shift_break_paid;not null;default:false" json:"shift_break_paid"`

	ShiftHourlyRate float64 `gorm:"column:shift_hourly_rate;type:numeric(10,2);not null;check:shift_hourly_rate > 0" json:"shift_hourly_rate"`
	ShiftWage       float64 `gorm:"column:shift_wage;type:numeric(10,2);not null" json:"shift_wage"`
}

func (ShiftModel) TableName() string { return "shifts" }

// ComputeWage derives pay for a worked span: unpaid break minutes are
// excluded from paid hours, then the penalty is subtracted. Rounded to
// cents; never negative.
func ComputeWage(start, end time.Time, breakMinutes int, breakPaid bool, hourlyRate, penalty float64) float64 {
	if !end.After(start) {
		return 0
	}
	minutes := end.Sub(start).Minutes()
	if !breakPaid {
		minutes -= float64(breakMinutes)
	}
	if minutes < 0 {
		minutes = 0
	}
	wage := minutes/60*hourlyRate - penalty
	if wage < 0 {
		wage = 0
	}
	return math.Round(wage*100) / 100
}

// Wage recomputes the shift's pay from its own fields.
func (s *ShiftModel) Wage() float64 {
	return ComputeWage(s.ShiftStartTime, s.ShiftEndTime, s.ShiftBreakMinutes, s.ShiftBreakPaid, s.ShiftHourlyRate, 0)
}
