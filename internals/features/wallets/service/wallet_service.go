package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "staffly_backend/internals/features/wallets/model"
	helper "staffly_backend/internals/helpers"
)

// ErrInsufficientFunds is returned by withdrawals that the balance
// cannot cover; payment refunds instead convert the shortfall to debt.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

func round2(v float64) float64 { return math.Round(v*100) / 100 }

/* ===================== Pure ledger math ===================== */
/* Kept free of gorm so transition handlers and tests share one
   source of truth for the debt arithmetic. */

// ApplyRelease credits amount to a wallet, settling outstanding debt
// first. Returns the new balance/debt, the portion actually credited
// and the debt remaining to deduct from the next credit.
func ApplyRelease(balance, debt, amount float64) (newBalance, newDebt, credited, remaining float64) {
	deducted := math.Min(debt, amount)
	credited = round2(amount - deducted)
	newBalance = round2(balance + credited)
	newDebt = round2(debt - deducted)
	return newBalance, newDebt, credited, newDebt
}

// ApplyDebit takes amount out of a wallet; whatever the balance cannot
// cover becomes outstanding debt.
func ApplyDebit(balance, debt, amount float64) (newBalance, newDebt, shortfall float64) {
	if amount <= balance {
		return round2(balance - amount), round2(debt), 0
	}
	shortfall = round2(amount - balance)
	return 0, round2(debt + shortfall), shortfall
}

/* ===================== Gorm layer ===================== */

// GetOrCreateWallet loads the worker's wallet row for update, creating
// it lazily on first credit. Must run inside a transaction.
func GetOrCreateWallet(tx *gorm.DB, workerID uuid.UUID) (*model.WorkerWalletModel, error) {
	var w model.WorkerWalletModel
	err := tx.Clauses(helper.LockForUpdate()).
		Where("worker_wallet_worker_id = ?", workerID).First(&w).Error
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	w = model.WorkerWalletModel{WorkerWalletWorkerID: workerID}
	if err := tx.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// Release credits amount to the worker's wallet inside tx and returns
// the advisory debt remaining to deduct from the next credit.
func Release(tx *gorm.DB, workerID uuid.UUID, amount float64) (remaining float64, err error) {
	w, err := GetOrCreateWallet(tx, workerID)
	if err != nil {
		return 0, err
	}
	newBalance, newDebt, _, remaining := ApplyRelease(w.WorkerWalletBalance, w.WorkerWalletOutstandingDebt, amount)
	err = tx.Model(&model.WorkerWalletModel{}).
		Where("worker_wallet_id = ?", w.WorkerWalletID).
		Updates(map[string]any{
			"worker_wallet_balance":          newBalance,
			"worker_wallet_outstanding_debt": newDebt,
		}).Error
	return remaining, err
}

// Debit takes amount out of the wallet inside tx, converting any
// shortfall to outstanding debt, and returns that shortfall.
func Debit(tx *gorm.DB, workerID uuid.UUID, amount float64) (shortfall float64, err error) {
	w, err := GetOrCreateWallet(tx, workerID)
	if err != nil {
		return 0, err
	}
	newBalance, newDebt, shortfall := ApplyDebit(w.WorkerWalletBalance, w.WorkerWalletOutstandingDebt, amount)
	err = tx.Model(&model.WorkerWalletModel{}).
		Where("worker_wallet_id = ?", w.WorkerWalletID).
		Updates(map[string]any{
			"worker_wallet_balance":          newBalance,
			"worker_wallet_outstanding_debt": newDebt,
		}).Error
	return shortfall, err
}

// DebitStrict fails instead of creating debt; used by cash-out
// processing where the money leaves the platform.
func DebitStrict(tx *gorm.DB, workerID uuid.UUID, amount float64) (balanceBefore, balanceAfter float64, err error) {
	w, err := GetOrCreateWallet(tx, workerID)
	if err != nil {
		return 0, 0, err
	}
	if amount > w.WorkerWalletBalance {
		return w.WorkerWalletBalance, w.WorkerWalletBalance, ErrInsufficientFunds
	}
	balanceBefore = w.WorkerWalletBalance
	balanceAfter = round2(w.WorkerWalletBalance - amount)
	err = tx.Model(&model.WorkerWalletModel{}).
		Where("worker_wallet_id = ?", w.WorkerWalletID).
		Update("worker_wallet_balance", balanceAfter).Error
	return balanceBefore, balanceAfter, err
}
