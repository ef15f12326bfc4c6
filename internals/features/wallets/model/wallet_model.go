package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkerWalletModel struct {
	WorkerWalletID       uuid.UUID `gorm:"column:worker_wallet_id;type:uuid;default:gen_random_uuid();primaryKey" json:"worker_wallet_id"`
	WorkerWalletWorkerID uuid.UUID `gorm:"column:worker_wallet_worker_id;type:uuid;not null;uniqueIndex" json:"worker_wallet_worker_id"`

	WorkerWalletBalance float64 `gorm:"column:worker_wallet_balance;type:numeric(12,2);not null;default:0" json:"worker_wallet_balance"`
	// Amount still owed by the worker (penalties, refunds the balance
	// could not cover); deducted from the next credit.
	WorkerWalletOutstandingDebt float64 `gorm:"column:worker_wallet_outstanding_debt;type:numeric(12,2);not null;default:0" json:"worker_wallet_outstanding_debt"`

	WorkerWalletCreatedAt time.Time `gorm:"column:worker_wallet_created_at;autoCreateTime" json:"worker_wallet_created_at"`
	WorkerWalletUpdatedAt time.Time `gorm:"column:worker_wallet_updated_at;autoUpdateTime" json:"worker_wallet_updated_at"`
}

func (WorkerWalletModel) TableName() string { return "worker_wallets" }

type CashTransactionModel struct {
	CashTransactionID       uuid.UUID `gorm:"column:cash_transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cash_transaction_id"`
	CashTransactionWorkerID uuid.UUID `gorm:"column:cash_transaction_worker_id;type:uuid;not null;index" json:"cash_transaction_worker_id"`

	// Signed: positive credits the wallet (cash in), negative debits it
	// (cash out).
	CashTransactionAmount float64 `gorm:"column:cash_transaction_amount;type:numeric(12,2);not null" json:"cash_transaction_amount"`

	CashTransactionMethod *string `gorm:"column:cash_transaction_method;type:cash_method" json:"cash_transaction_method,omitempty"`
	CashTransactionStatus string  `gorm:"column:cash_transaction_status;type:cash_transaction_status;not null;default:'pending';index" json:"cash_transaction_status"`

	CashTransactionBalanceBefore *float64 `gorm:"column:cash_transaction_balance_before;type:numeric(12,2)" json:"cash_transaction_balance_before,omitempty"`
	CashTransactionBalanceAfter  *float64 `gorm:"column:cash_transaction_balance_after;type:numeric(12,2)" json:"cash_transaction_balance_after,omitempty"`

	CashTransactionRemarks *string `gorm:"column:cash_transaction_remarks;type:text" json:"cash_transaction_remarks,omitempty"`

	CashTransactionCreatedAt time.Time `gorm:"column:cash_transaction_created_at;autoCreateTime" json:"cash_transaction_created_at"`
	CashTransactionUpdatedAt time.Time `gorm:"column:cash_transaction_updated_at;autoUpdateTime" json:"cash_transaction_updated_at"`
}

func (CashTransactionModel) TableName() string { return "cash_transactions" }

// Direction derives cash_in/cash_out from the amount's sign.
func (t CashTransactionModel) Direction() string {
	if t.CashTransactionAmount < 0 {
		return DirectionCashOut
	}
	return DirectionCashIn
}
