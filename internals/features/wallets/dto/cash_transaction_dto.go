package dto

import (
	"time"

	"github.com/google/uuid"

	m "staffly_backend/internals/features/wallets/model"
)

/* =============== REQUESTS =============== */

type CreateCashTransactionRequest struct {
	CashTransactionWorkerID uuid.UUID `json:"cash_transaction_worker_id" validate:"required"`
	// Signed: positive = cash in, negative = cash out.
	CashTransactionAmount  float64 `json:"cash_transaction_amount" validate:"required"`
	CashTransactionMethod  *string `json:"cash_transaction_method" validate:"omitempty,oneof=paynow bank_account"`
	CashTransactionRemarks *string `json:"cash_transaction_remarks" validate:"omitempty"`
}

func (r CreateCashTransactionRequest) ToModel() *m.CashTransactionModel {
	return &m.CashTransactionModel{
		CashTransactionWorkerID: r.CashTransactionWorkerID,
		CashTransactionAmount:   r.CashTransactionAmount,
		CashTransactionMethod:   r.CashTransactionMethod,
		CashTransactionRemarks:  r.CashTransactionRemarks,
		CashTransactionStatus:   string(m.CashTransactionStatusPending),
	}
}

/* =============== RESPONSES =============== */

type CashTransactionResponse struct {
	CashTransactionID            uuid.UUID `json:"cash_transaction_id"`
	CashTransactionWorkerID      uuid.UUID `json:"cash_transaction_worker_id"`
	CashTransactionAmount        float64   `json:"cash_transaction_amount"`
	CashTransactionDirection     string    `json:"cash_transaction_direction"`
	CashTransactionMethod        *string   `json:"cash_transaction_method,omitempty"`
	CashTransactionStatus        string    `json:"cash_transaction_status"`
	CashTransactionStatusLabel   string    `json:"cash_transaction_status_label"`
	CashTransactionBalanceBefore *float64  `json:"cash_transaction_balance_before,omitempty"`
	CashTransactionBalanceAfter  *float64  `json:"cash_transaction_balance_after,omitempty"`
	CashTransactionRemarks       *string   `json:"cash_transaction_remarks,omitempty"`
	CashTransactionCreatedAt     time.Time `json:"cash_transaction_created_at"`
}

func FromModel(t m.CashTransactionModel) CashTransactionResponse {
	return CashTransactionResponse{
		CashTransactionID:            t.CashTransactionID,
		CashTransactionWorkerID:      t.CashTransactionWorkerID,
		CashTransactionAmount:        t.CashTransactionAmount,
		CashTransactionDirection:     t.Direction(),
		CashTransactionMethod:        t.CashTransactionMethod,
		CashTransactionStatus:        t.CashTransactionStatus,
		CashTransactionStatusLabel:   m.CashTransactionStatus(t.CashTransactionStatus).Label(),
		CashTransactionBalanceBefore: t.CashTransactionBalanceBefore,
		CashTransactionBalanceAfter:  t.CashTransactionBalanceAfter,
		CashTransactionRemarks:       t.CashTransactionRemarks,
		CashTransactionCreatedAt:     t.CashTransactionCreatedAt,
	}
}

func FromModels(rows []m.CashTransactionModel) []CashTransactionResponse {
	out := make([]CashTransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, FromModel(t))
	}
	return out
}
