package controller

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "staffly_backend/internals/features/wallets/dto"
	model "staffly_backend/internals/features/wallets/model"
	service "staffly_backend/internals/features/wallets/service"
	helper "staffly_backend/internals/helpers"
)

type CashTransactionController struct {
	DB *gorm.DB
}

func NewCashTransactionController(db *gorm.DB) *CashTransactionController {
	return &CashTransactionController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/admin/withdrawals
func (h *CashTransactionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.CashTransactionModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("cash_transaction_status = ?", strings.ToLower(status))
	}
	workerID, err := helper.ParseUUIDQuery(c, "worker_id")
	if err != nil {
		return err
	}
	if workerID != nil {
		q = q.Where("cash_transaction_worker_id = ?", *workerID)
	}
	switch strings.TrimSpace(c.Query("direction")) {
	case model.DirectionCashIn:
		q = q.Where("cash_transaction_amount >= 0")
	case model.DirectionCashOut:
		q = q.Where("cash_transaction_amount < 0")
	}
	start, end, err := helper.ParseDateRange(c)
	if err != nil {
		return err
	}
	if start != nil {
		q = q.Where("cash_transaction_created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("cash_transaction_created_at < ?", *end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count cash transactions")
	}

	var rows []model.CashTransactionModel
	if err := q.Order("cash_transaction_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load cash transactions")
	}

	data := dto.FromModels(rows)
	return helper.JsonList(c, "Cash transactions retrieved", data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

/* ======================= CREATE ======================= */
// POST /api/admin/withdrawals
func (h *CashTransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateCashTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.CashTransactionAmount == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be non-zero")
	}
	// Cash out needs a payout method; cash in does not.
	if req.CashTransactionAmount < 0 {
		if req.CashTransactionMethod == nil || !model.CashMethod(*req.CashTransactionMethod).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Cash out requires a method (paynow or bank_account)")
		}
	}

	row := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		w, err := service.GetOrCreateWallet(tx, req.CashTransactionWorkerID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load wallet")
		}
		before := w.WorkerWalletBalance
		row.CashTransactionBalanceBefore = &before
		if err := tx.Create(row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create cash transaction")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Cash transaction created", dto.FromModel(*row))
}

/* ======================= PROCESS ======================= */
// PUT /api/admin/withdrawals/process/:id
func (h *CashTransactionController) Process(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.CashTransactionModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("cash_transaction_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Cash transaction not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load cash transaction")
		}

		if !model.CanProcess(model.CashTransactionStatus(row.CashTransactionStatus)) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Cash transaction is already %s",
					model.CashTransactionStatus(row.CashTransactionStatus).Label()))
		}

		status := model.CashTransactionStatusProcessed
		var before, after float64
		if row.CashTransactionAmount < 0 {
			before, after, err = service.DebitStrict(tx, row.CashTransactionWorkerID, math.Abs(row.CashTransactionAmount))
			if errors.Is(err, service.ErrInsufficientFunds) {
				status = model.CashTransactionStatusFailed
			} else if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to debit wallet")
			}
		} else {
			w, err := service.GetOrCreateWallet(tx, row.CashTransactionWorkerID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load wallet")
			}
			before = w.WorkerWalletBalance
			if _, err := service.Release(tx, row.CashTransactionWorkerID, row.CashTransactionAmount); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to credit wallet")
			}
			var fresh model.WorkerWalletModel
			if err := tx.Where("worker_wallet_worker_id = ?", row.CashTransactionWorkerID).First(&fresh).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload wallet")
			}
			after = fresh.WorkerWalletBalance
		}

		if err := tx.Model(&model.CashTransactionModel{}).
			Where("cash_transaction_id = ?", id).
			Updates(map[string]any{
				"cash_transaction_status":         string(status),
				"cash_transaction_balance_before": before,
				"cash_transaction_balance_after":  after,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cash transaction")
		}
		row.CashTransactionStatus = string(status)
		row.CashTransactionBalanceBefore = &before
		row.CashTransactionBalanceAfter = &after
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Cash transaction processed", dto.FromModel(row))
}
