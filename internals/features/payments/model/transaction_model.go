package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionModel struct {
	TransactionID         uuid.UUID `gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaction_id"`
	TransactionWorkerID   uuid.UUID `gorm:"column:transaction_worker_id;type:uuid;not null;index" json:"transaction_worker_id"`
	TransactionWorkerName string    `gorm:"column:transaction_worker_name;type:varchar(100);not null" json:"transaction_worker_name"`

	TransactionJobID         *uuid.UUID `gorm:"column:transaction_job_id;type:uuid;index" json:"transaction_job_id,omitempty"`
	TransactionShiftID       *uuid.UUID `gorm:"column:transaction_shift_id;type:uuid;index" json:"transaction_shift_id,omitempty"`
	TransactionApplicationID *uuid.UUID `gorm:"column:transaction_application_id;type:uuid;uniqueIndex" json:"transaction_application_id,omitempty"`

	TransactionAmount   float64 `gorm:"column:transaction_amount;type:numeric(12,2);not null;check:transaction_amount >= 0" json:"transaction_amount"`
	TransactionRateType string  `gorm:"column:transaction_rate_type;type:rate_type;not null;default:'salary'" json:"transaction_rate_type"`
	TransactionStatus   string  `gorm:"column:transaction_status;type:transaction_status;not null;default:'pending';index" json:"transaction_status"`

	// Set when a card intent exists (Midtrans Snap order).
	TransactionPaymentIntentID *string `gorm:"column:transaction_payment_intent_id;type:varchar(128)" json:"transaction_payment_intent_id,omitempty"`

	TransactionRemarks      *string `gorm:"column:transaction_remarks;type:text" json:"transaction_remarks,omitempty"`
	TransactionRejectReason *string `gorm:"column:transaction_reject_reason;type:text" json:"transaction_reject_reason,omitempty"`
	TransactionRefundReason *string `gorm:"column:transaction_refund_reason;type:text" json:"transaction_refund_reason,omitempty"`

	// Snapshot of the wage math behind the current amount, kept through
	// regenerations so the admin can audit corrections.
	TransactionBreakdown datatypes.JSON `gorm:"column:transaction_breakdown;type:jsonb" json:"transaction_breakdown,omitempty"`

	TransactionPaidAt     *time.Time `gorm:"column:transaction_paid_at" json:"transaction_paid_at,omitempty"`
	TransactionRefundedAt *time.Time `gorm:"column:transaction_refunded_at" json:"transaction_refunded_at,omitempty"`

	TransactionCreatedAt time.Time `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt time.Time `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at"`
}

func (TransactionModel) TableName() string { return "transactions" }
