package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "staffly_backend/internals/features/applications/model"
)

/* =============== REQUESTS =============== */

type CreateApplicationRequest struct {
	ApplicationWorkerID   uuid.UUID `json:"application_worker_id"   validate:"required"`
	ApplicationWorkerName string    `json:"application_worker_name" validate:"required,min=2"`
	ApplicationJobID      uuid.UUID `json:"application_job_id"      validate:"required"`
	ApplicationShiftID    uuid.UUID `json:"application_shift_id"    validate:"required"`
}

func (r CreateApplicationRequest) ToModel() *m.ApplicationModel {
	return &m.ApplicationModel{
		ApplicationWorkerID:   r.ApplicationWorkerID,
		ApplicationWorkerName: r.ApplicationWorkerName,
		ApplicationJobID:      r.ApplicationJobID,
		ApplicationShiftID:    r.ApplicationShiftID,
		ApplicationStatus:     string(m.ApplicationStatusPending),
	}
}

type ApproveApplicationRequest struct {
	Notes *string `json:"notes" validate:"omitempty"`
}

// TrimmedNotes returns the notes stripped of surrounding whitespace,
// or nil when nothing meaningful was sent. The stored and echoed
// values both come from here.
func (r ApproveApplicationRequest) TrimmedNotes() *string {
	if r.Notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

// Generic status update; the decision states are refused by the
// controller, only the dedicated endpoints may set them.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

/* =============== RESPONSES =============== */

type ApplicationResponse struct {
	ApplicationID          uuid.UUID `json:"application_id"`
	ApplicationWorkerID    uuid.UUID `json:"application_worker_id"`
	ApplicationWorkerName  string    `json:"application_worker_name"`
	ApplicationJobID       uuid.UUID `json:"application_job_id"`
	ApplicationShiftID     uuid.UUID `json:"application_shift_id"`
	ApplicationStatus      string    `json:"application_status"`
	ApplicationStatusLabel string    `json:"application_status_label"`
	ApplicationRejectReason *string  `json:"application_reject_reason,omitempty"`
	ApplicationAdminNotes   *string  `json:"application_admin_notes,omitempty"`
	ApplicationAppliedAt   time.Time `json:"application_applied_at"`
}

func FromModel(a m.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:           a.ApplicationID,
		ApplicationWorkerID:     a.ApplicationWorkerID,
		ApplicationWorkerName:   a.ApplicationWorkerName,
		ApplicationJobID:        a.ApplicationJobID,
		ApplicationShiftID:      a.ApplicationShiftID,
		ApplicationStatus:       a.ApplicationStatus,
		ApplicationStatusLabel:  m.ApplicationStatus(a.ApplicationStatus).Label(),
		ApplicationRejectReason: a.ApplicationRejectReason,
		ApplicationAdminNotes:   a.ApplicationAdminNotes,
		ApplicationAppliedAt:    a.ApplicationAppliedAt,
	}
}

func FromModels(rows []m.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, FromModel(a))
	}
	return out
}
