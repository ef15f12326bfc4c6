package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationModel struct {
	ApplicationID         uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`
	ApplicationWorkerID   uuid.UUID `gorm:"column:application_worker_id;type:uuid;not null;uniqueIndex:uq_applications_worker_shift" json:"application_worker_id"`
	ApplicationWorkerName string    `gorm:"column:application_worker_name;type:varchar(100);not null" json:"application_worker_name"`

	ApplicationJobID uuid.UUID `gorm:"column:application_job_id;type:uuid;not null;index" json:"application_job_id"`
	// One application per worker per shift; duplicate applies surface
	// as a conflict instead of a second row.
	ApplicationShiftID uuid.UUID `gorm:"column:application_shift_id;type:uuid;not null;index;uniqueIndex:uq_applications_worker_shift" json:"application_shift_id"`

	ApplicationStatus       string  `gorm:"column:application_status;type:application_status;not null;default:'pending';index" json:"application_status"`
	ApplicationRejectReason *string `gorm:"column:application_reject_reason;type:text" json:"application_reject_reason,omitempty"`
	ApplicationAdminNotes   *string `gorm:"column:application_admin_notes;type:text" json:"application_admin_notes,omitempty"`

	ApplicationAppliedAt time.Time `gorm:"column:application_applied_at;autoCreateTime" json:"application_applied_at"`
	ApplicationUpdatedAt time.Time `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
}

func (ApplicationModel) TableName() string { return "applications" }
