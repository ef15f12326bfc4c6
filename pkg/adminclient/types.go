package adminclient

import "time"

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"`
}

type Shift struct {
	ShiftID           string    `json:"shift_id"`
	ShiftJobID        string    `json:"shift_job_id"`
	ShiftStartTime    time.Time `json:"shift_start_time"`
	ShiftEndTime      time.Time `json:"shift_end_time"`
	ShiftVacancy      int       `json:"shift_vacancy"`
	ShiftStandby      int       `json:"shift_standby"`
	ShiftBreakMinutes int       `json:"shift_break_minutes"`
	ShiftBreakPaid    bool      `json:"shift_break_paid"`
	ShiftHourlyRate   float64   `json:"shift_hourly_rate"`
	ShiftWage         float64   `json:"shift_wage"`
}

type Job struct {
	JobID          string    `json:"job_id"`
	JobEmployerID  string    `json:"job_employer_id"`
	JobOutletID    string    `json:"job_outlet_id"`
	JobTitle       string    `json:"job_title"`
	JobDate        time.Time `json:"job_date"`
	JobTags        []string  `json:"job_tags"`
	JobStatus      string    `json:"job_status"`
	JobStatusLabel string    `json:"job_status_label"`
	JobShifts      []Shift   `json:"job_shifts"`
}

type Application struct {
	ApplicationID           string    `json:"application_id"`
	ApplicationWorkerID     string    `json:"application_worker_id"`
	ApplicationWorkerName   string    `json:"application_worker_name"`
	ApplicationJobID        string    `json:"application_job_id"`
	ApplicationShiftID      string    `json:"application_shift_id"`
	ApplicationStatus       string    `json:"application_status"`
	ApplicationStatusLabel  string    `json:"application_status_label"`
	ApplicationRejectReason *string   `json:"application_reject_reason,omitempty"`
	ApplicationAdminNotes   *string   `json:"application_admin_notes,omitempty"`
	ApplicationAppliedAt    time.Time `json:"application_applied_at"`
}

type Transaction struct {
	TransactionID              string     `json:"transaction_id"`
	TransactionWorkerID        string     `json:"transaction_worker_id"`
	TransactionWorkerName      string     `json:"transaction_worker_name"`
	TransactionJobID           *string    `json:"transaction_job_id,omitempty"`
	TransactionShiftID         *string    `json:"transaction_shift_id,omitempty"`
	TransactionAmount          float64    `json:"transaction_amount"`
	TransactionRateType        string     `json:"transaction_rate_type"`
	TransactionRateTypeLabel   string     `json:"transaction_rate_type_label"`
	TransactionStatus          string     `json:"transaction_status"`
	TransactionStatusLabel     string     `json:"transaction_status_label"`
	TransactionPaymentIntentID *string    `json:"transaction_payment_intent_id,omitempty"`
	TransactionRemarks         *string    `json:"transaction_remarks,omitempty"`
	TransactionRejectReason    *string    `json:"transaction_reject_reason,omitempty"`
	TransactionRefundReason    *string    `json:"transaction_refund_reason,omitempty"`
	TransactionPaidAt          *time.Time `json:"transaction_paid_at,omitempty"`
	TransactionCreatedAt       time.Time  `json:"transaction_created_at"`
}

// TransitionResult wraps a mutated transaction with the server-computed
// advisory amount still owed by the worker. The advisory is surfaced,
// never enforced client-side.
type TransitionResult struct {
	Transaction       Transaction `json:"transaction"`
	RemainingToDeduct *float64    `json:"remaining_to_deduct,omitempty"`
}
