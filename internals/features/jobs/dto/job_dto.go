package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "staffly_backend/internals/features/jobs/model"
)

/* =============== REQUESTS =============== */

type CreateShiftRequest struct {
	ShiftStartTime    time.Time `json:"shift_start_time"    validate:"required"`
	ShiftEndTime      time.Time `json:"shift_end_time"      validate:"required"`
	ShiftVacancy      int       `json:"shift_vacancy"       validate:"required,min=1"`
	ShiftStandby      int       `json:"shift_standby"       validate:"min=0"`
	ShiftBreakMinutes int       `json:"shift_break_minutes" validate:"min=0"`
	ShiftBreakPaid    bool      `json:"shift_break_paid"`
	ShiftHourlyRate   float64   `json:"shift_hourly_rate"   validate:"required,gt=0"`
}

type CreateJobRequest struct {
	JobEmployerID uuid.UUID            `json:"job_employer_id" validate:"required"`
	JobOutletID   uuid.UUID            `json:"job_outlet_id"   validate:"required"`
	JobTitle      string               `json:"job_title"       validate:"required,min=3"`
	JobDate       time.Time            `json:"job_date"        validate:"required"`
	JobTags       []string             `json:"job_tags"        validate:"omitempty,dive,min=1"`
	JobShifts     []CreateShiftRequest `json:"job_shifts"      validate:"required,min=1,dive"`
}

func (r CreateJobRequest) ToModel() *m.JobModel {
	job := &m.JobModel{
		JobEmployerID: r.JobEmployerID,
		JobOutletID:   r.JobOutletID,
		JobTitle:      r.JobTitle,
		JobDate:       r.JobDate,
		JobTags:       pq.StringArray(r.JobTags),
		JobStatus:     string(m.JobStatusPending),
	}
	for _, s := range r.JobShifts {
		shift := m.ShiftModel{
			ShiftStartTime:    s.ShiftStartTime,
			ShiftEndTime:      s.ShiftEndTime,
			ShiftVacancy:      s.ShiftVacancy,
			ShiftStandby:      s.ShiftStandby,
			ShiftBreakMinutes: s.ShiftBreakMinutes,
			ShiftBreakPaid:    s.ShiftBreakPaid,
			ShiftHourlyRate:   s.ShiftHourlyRate,
		}
		shift.ShiftWage = shift.Wage()
		job.JobShifts = append(job.JobShifts, shift)
	}
	return job
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

/* =============== RESPONSES =============== */

type JobResponse struct {
	JobID          uuid.UUID      `json:"job_id"`
	JobEmployerID  uuid.UUID      `json:"job_employer_id"`
	JobOutletID    uuid.UUID      `json:"job_outlet_id"`
	JobTitle       string         `json:"job_title"`
	JobDate        time.Time      `json:"job_date"`
	JobTags        []string       `json:"job_tags"`
	JobStatus      string         `json:"job_status"`
	JobStatusLabel string         `json:"job_status_label"`
	JobShifts      []m.ShiftModel `json:"job_shifts"`
	JobCreatedAt   time.Time      `json:"job_created_at"`
	JobUpdatedAt   time.Time      `json:"job_updated_at"`
}

func FromModel(job m.JobModel) JobResponse {
	return JobResponse{
		JobID:          job.JobID,
		JobEmployerID:  job.JobEmployerID,
		JobOutletID:    job.JobOutletID,
		JobTitle:       job.JobTitle,
		JobDate:        job.JobDate,
		JobTags:        job.JobTags,
		JobStatus:      job.JobStatus,
		JobStatusLabel: m.JobStatus(job.JobStatus).Label(),
		JobShifts:      job.JobShifts,
		JobCreatedAt:   job.JobCreatedAt,
		JobUpdatedAt:   job.JobUpdatedAt,
	}
}

func FromModels(jobs []m.JobModel) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromModel(j))
	}
	return out
}
