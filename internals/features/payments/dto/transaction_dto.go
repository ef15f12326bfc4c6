package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "staffly_backend/internals/features/payments/model"
)

/* =============== REQUESTS =============== */

// Manual "Add Transaction" from the dashboard.
type CreateTransactionRequest struct {
	TransactionWorkerID   uuid.UUID  `json:"transaction_worker_id"   validate:"required"`
	TransactionWorkerName string     `json:"transaction_worker_name" validate:"required,min=2"`
	TransactionJobID      *uuid.UUID `json:"transaction_job_id"      validate:"omitempty"`
	TransactionShiftID    *uuid.UUID `json:"transaction_shift_id"    validate:"omitempty"`
	TransactionAmount     float64    `json:"transaction_amount"      validate:"required,gt=0"`
	TransactionRateType   string     `json:"transaction_rate_type"   validate:"required,oneof=salary incentive referral penalty others"`
	TransactionRemarks    *string    `json:"transaction_remarks"     validate:"omitempty"`
}

func (r CreateTransactionRequest) ToModel() *m.TransactionModel {
	return &m.TransactionModel{
		TransactionWorkerID:   r.TransactionWorkerID,
		TransactionWorkerName: r.TransactionWorkerName,
		TransactionJobID:      r.TransactionJobID,
		TransactionShiftID:    r.TransactionShiftID,
		TransactionAmount:     r.TransactionAmount,
		TransactionRateType:   r.TransactionRateType,
		TransactionStatus:     string(m.TransactionStatusPending),
		TransactionRemarks:    r.TransactionRemarks,
	}
}

type RejectTransactionRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

type RefundTransactionRequest struct {
	Reason *string `json:"reason" validate:"omitempty"`
}

// Regenerate recomputes the wage from corrected times before
// re-approval; the transaction stays pending.
type RegenerateTransactionRequest struct {
	StartTime     time.Time `json:"start_time"     validate:"required"`
	EndTime       time.Time `json:"end_time"       validate:"required"`
	BreakMinutes  int       `json:"break_minutes"  validate:"min=0"`
	PenaltyAmount float64   `json:"penalty_amount" validate:"min=0"`
}

/* =============== RESPONSES =============== */

type TransactionResponse struct {
	TransactionID              uuid.UUID      `json:"transaction_id"`
	TransactionWorkerID        uuid.UUID      `json:"transaction_worker_id"`
	TransactionWorkerName      string         `json:"transaction_worker_name"`
	TransactionJobID           *uuid.UUID     `json:"transaction_job_id,omitempty"`
	TransactionShiftID         *uuid.UUID     `json:"transaction_shift_id,omitempty"`
	TransactionAmount          float64        `json:"transaction_amount"`
	TransactionRateType        string         `json:"transaction_rate_type"`
	TransactionRateTypeLabel   string         `json:"transaction_rate_type_label"`
	TransactionStatus          string         `json:"transaction_status"`
	TransactionStatusLabel     string         `json:"transaction_status_label"`
	TransactionPaymentIntentID *string        `json:"transaction_payment_intent_id,omitempty"`
	TransactionRemarks         *string        `json:"transaction_remarks,omitempty"`
	TransactionRejectReason    *string        `json:"transaction_reject_reason,omitempty"`
	TransactionRefundReason    *string        `json:"transaction_refund_reason,omitempty"`
	TransactionBreakdown       datatypes.JSON `json:"transaction_breakdown,omitempty"`
	TransactionPaidAt          *time.Time     `json:"transaction_paid_at,omitempty"`
	TransactionRefundedAt      *time.Time     `json:"transaction_refunded_at,omitempty"`
	TransactionCreatedAt       time.Time      `json:"transaction_created_at"`
}

func FromModel(t m.TransactionModel) TransactionResponse {
	return TransactionResponse{
		TransactionID:              t.TransactionID,
		TransactionWorkerID:        t.TransactionWorkerID,
		TransactionWorkerName:      t.TransactionWorkerName,
		TransactionJobID:           t.TransactionJobID,
		TransactionShiftID:         t.TransactionShiftID,
		TransactionAmount:          t.TransactionAmount,
		TransactionRateType:        t.TransactionRateType,
		TransactionRateTypeLabel:   m.RateType(t.TransactionRateType).Label(),
		TransactionStatus:          t.TransactionStatus,
		TransactionStatusLabel:     m.TransactionStatus(t.TransactionStatus).Label(),
		TransactionPaymentIntentID: t.TransactionPaymentIntentID,
		TransactionRemarks:         t.TransactionRemarks,
		TransactionRejectReason:    t.TransactionRejectReason,
		TransactionRefundReason:    t.TransactionRefundReason,
		TransactionBreakdown:       t.TransactionBreakdown,
		TransactionPaidAt:          t.TransactionPaidAt,
		TransactionRefundedAt:      t.TransactionRefundedAt,
		TransactionCreatedAt:       t.TransactionCreatedAt,
	}
}

func FromModels(rows []m.TransactionModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, FromModel(t))
	}
	return out
}

// TransitionResponse wraps a mutated transaction together with the
// server-computed advisory amount still owed by the worker.
type TransitionResponse struct {
	Transaction       TransactionResponse `json:"transaction"`
	RemainingToDeduct *float64            `json:"remaining_to_deduct,omitempty"`
}

type CardIntentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	SnapToken   string              `json:"snap_token"`
	OrderID     string              `json:"order_id"`
}
