package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	jobModel "staffly_backend/internals/features/jobs/model"
	notifService "staffly_backend/internals/features/notifications/service"
	dto "staffly_backend/internals/features/payments/dto"
	model "staffly_backend/internals/features/payments/model"
	service "staffly_backend/internals/features/payments/service"
	walletService "staffly_backend/internals/features/wallets/service"
	helper "staffly_backend/internals/helpers"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/admin/payments/transactions
func (h *TransactionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.TransactionModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("transaction_status = ?", strings.ToLower(status))
	}
	if rateType := strings.TrimSpace(c.Query("rate_type")); rateType != "" {
		q = q.Where("transaction_rate_type = ?", strings.ToLower(rateType))
	}
	workerID, err := helper.ParseUUIDQuery(c, "worker_id")
	if err != nil {
		return err
	}
	if workerID != nil {
		q = q.Where("transaction_worker_id = ?", *workerID)
	}
	jobID, err := helper.ParseUUIDQuery(c, "job_id")
	if err != nil {
		return err
	}
	if jobID != nil {
		q = q.Where("transaction_job_id = ?", *jobID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("transaction_worker_name ILIKE ?", "%"+search+"%")
	}
	start, end, err := helper.ParseDateRange(c)
	if err != nil {
		return err
	}
	if start != nil {
		q = q.Where("transaction_created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("transaction_created_at < ?", *end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count transactions")
	}

	var rows []model.TransactionModel
	if err := q.Order("transaction_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transactions")
	}

	data := dto.FromModels(rows)
	return helper.JsonList(c, "Transactions retrieved", data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

/* ======================= CREATE ======================= */
// POST /api/admin/payments/transactions
func (h *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create transaction")
	}
	return helper.JsonCreated(c, "Transaction created", dto.FromModel(*row))
}

/* ======================= APPROVE ======================= */
// PUT /api/admin/payments/transactions/:id/approve
func (h *TransactionController) Approve(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.TransactionModel
	var remaining float64
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("transaction_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transaction")
		}

		from := model.TransactionStatus(row.TransactionStatus)
		if !model.CanApprove(from) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Transaction is already %s", from.Label()))
		}

		rem, err := releaseForTransaction(tx, &row)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to release funds")
		}
		remaining = rem

		now := time.Now()
		if err := tx.Model(&model.TransactionModel{}).
			Where("transaction_id = ?", id).
			Updates(map[string]any{
				"transaction_status":  string(model.TransactionStatusCompleted),
				"transaction_paid_at": now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve transaction")
		}
		row.TransactionStatus = string(model.TransactionStatusCompleted)
		row.TransactionPaidAt = &now
		return nil
	})
	if err != nil {
		return err
	}

	title, bodyText := approvalNotice(model.RateType(row.TransactionRateType), row.TransactionAmount)
	notifService.Push(h.DB, row.TransactionWorkerID, title, bodyText,
		map[string]any{"transaction_id": row.TransactionID.String()})

	resp := dto.TransitionResponse{Transaction: dto.FromModel(row)}
	if remaining > 0 {
		resp.RemainingToDeduct = &remaining
	}
	return helper.JsonUpdated(c, "Transaction approved", resp)
}

/* ======================= REJECT ======================= */
// PUT /api/admin/payments/transactions/:id/reject
func (h *TransactionController) Reject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.RejectTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fiber.NewError(fiber.StatusBadRequest, "A rejection reason is required")
	}

	var row model.TransactionModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("transaction_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transaction")
		}

		from := model.TransactionStatus(row.TransactionStatus)
		if !model.CanReject(from) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Transaction is already %s", from.Label()))
		}

		if err := tx.Model(&model.TransactionModel{}).
			Where("transaction_id = ?", id).
			Updates(map[string]any{
				"transaction_status":        string(model.TransactionStatusRejected),
				"transaction_reject_reason": reason,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to reject transaction")
		}
		row.TransactionStatus = string(model.TransactionStatusRejected)
		row.TransactionRejectReason = &reason
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Transaction rejected", dto.FromModel(row))
}

/* ======================= REGENERATE ======================= */
// POST /api/admin/transactions/:id/regenerate
func (h *TransactionController) Regenerate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.RegenerateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.EndTime.After(req.StartTime) {
		return fiber.NewError(fiber.StatusBadRequest, "end_time must be after start_time")
	}

	var row model.TransactionModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("transaction_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transaction")
		}

		from := model.TransactionStatus(row.TransactionStatus)
		if !model.CanRegenerate(from) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Transaction is already %s", from.Label()))
		}
		if row.TransactionShiftID == nil {
			return fiber.NewError(fiber.StatusConflict, "Transaction has no shift to recompute from")
		}

		var shift jobModel.ShiftModel
		if err := tx.Where("shift_id = ?", *row.TransactionShiftID).First(&shift).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load shift")
		}

		amount := jobModel.ComputeWage(req.StartTime, req.EndTime,
			req.BreakMinutes, shift.ShiftBreakPaid, shift.ShiftHourlyRate, req.PenaltyAmount)

		breakdown, _ := json.Marshal(map[string]any{
			"start_time":      req.StartTime,
			"end_time":        req.EndTime,
			"break_minutes":   req.BreakMinutes,
			"break_paid":      shift.ShiftBreakPaid,
			"hourly_rate":     shift.ShiftHourlyRate,
			"penalty_amount":  req.PenaltyAmount,
			"computed_amount": amount,
		})

		if err := tx.Model(&model.TransactionModel{}).
			Where("transaction_id = ?", id).
			Updates(map[string]any{
				"transaction_amount":            amount,
				"transaction_status":            string(model.TransactionStatusPending),
				"transaction_payment_intent_id": nil,
				"transaction_breakdown":         datatypes.JSON(breakdown),
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to regenerate transaction")
		}
		row.TransactionAmount = amount
		row.TransactionStatus = string(model.TransactionStatusPending)
		row.TransactionPaymentIntentID = nil
		row.TransactionBreakdown = datatypes.JSON(breakdown)
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Transaction regenerated", dto.FromModel(row))
}

/* ======================= REFUND ======================= */
// POST /api/admin/payments/transactions/:id/refund
func (h *TransactionController) Refund(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.RefundTransactionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}
	}

	var row model.TransactionModel
	var remaining float64
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("transaction_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transaction")
		}

		from := model.TransactionStatus(row.TransactionStatus)
		if !model.CanRefund(from) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Only paid transactions can be refunded (current: %s)", from.Label()))
		}

		// Claw the money back; whatever the balance cannot cover becomes
		// debt deducted from the next credit.
		shortfall, err := walletService.Debit(tx, row.TransactionWorkerID, row.TransactionAmount)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to debit wallet")
		}
		remaining = shortfall

		now := time.Now()
		updates := map[string]any{
			"transaction_status":      string(model.TransactionStatusRefunded),
			"transaction_refunded_at": now,
		}
		if req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
			reason := strings.TrimSpace(*req.Reason)
			updates["transaction_refund_reason"] = reason
			row.TransactionRefundReason = &reason
		}
		if err := tx.Model(&model.TransactionModel{}).
			Where("transaction_id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to refund transaction")
		}
		row.TransactionStatus = string(model.TransactionStatusRefunded)
		row.TransactionRefundedAt = &now
		return nil
	})
	if err != nil {
		return err
	}

	resp := dto.TransitionResponse{Transaction: dto.FromModel(row)}
	if remaining > 0 {
		resp.RemainingToDeduct = &remaining
	}
	return helper.JsonUpdated(c, "Transaction refunded", resp)
}

/* ======================= PAY WITH CARD ======================= */
// POST /api/admin/payments/transactions/:id/card
func (h *TransactionController) PayWithCard(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.TransactionModel
	if err := h.DB.Where("transaction_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transaction")
	}

	if !model.CanPayWithCard(model.TransactionStatus(row.TransactionStatus)) {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Card payment is only available while pending (current: %s)",
				model.TransactionStatus(row.TransactionStatus).Label()))
	}

	token, orderID, err := service.GenerateSnapToken(row)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to create card payment intent")
	}

	if err := h.DB.Model(&model.TransactionModel{}).
		Where("transaction_id = ?", id).
		Updates(map[string]any{
			"transaction_payment_intent_id": orderID,
			"transaction_status":            string(model.TransactionStatusProcessing),
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store payment intent")
	}
	row.TransactionPaymentIntentID = &orderID
	row.TransactionStatus = string(model.TransactionStatusProcessing)

	return helper.JsonOK(c, "Card payment intent created", dto.CardIntentResponse{
		Transaction: dto.FromModel(row),
		SnapToken:   token,
		OrderID:     orderID,
	})
}

/* ======================= WEBHOOK ======================= */
// POST /api/payments/notification (Midtrans, unauthenticated skip-path)
func (h *TransactionController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		return fiber.NewError(fiber.StatusBadRequest, "Incomplete webhook payload")
	}

	var row model.TransactionModel
	if err := h.DB.Where("transaction_payment_intent_id = ?", orderID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown order id")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load transaction")
	}

	switch model.ClassifySettlement(model.TransactionStatus(row.TransactionStatus), status) {
	case model.SettlementRelease:
		err := h.DB.Transaction(func(tx *gorm.DB) error {
			var fresh model.TransactionModel
			if err := tx.Clauses(helper.LockForUpdate()).
				Where("transaction_id = ?", row.TransactionID).First(&fresh).Error; err != nil {
				return err
			}
			// Reclassify under lock; replayed notifications for settled
			// rows are no-ops.
			if model.ClassifySettlement(model.TransactionStatus(fresh.TransactionStatus), status) != model.SettlementRelease {
				return nil
			}
			if _, err := releaseForTransaction(tx, &fresh); err != nil {
				return err
			}
			now := time.Now()
			return tx.Model(&model.TransactionModel{}).
				Where("transaction_id = ?", fresh.TransactionID).
				Updates(map[string]any{
					"transaction_status":  string(model.TransactionStatusCompleted),
					"transaction_paid_at": now,
				}).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to settle transaction")
		}
	case model.SettlementReopen:
		if err := h.DB.Model(&model.TransactionModel{}).
			Where("transaction_id = ? AND transaction_status = ?",
				row.TransactionID, string(model.TransactionStatusProcessing)).
			Updates(map[string]any{
				"transaction_status":            string(model.TransactionStatusPending),
				"transaction_payment_intent_id": nil,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to reset transaction")
		}
	}

	return helper.JsonOK(c, "Notification processed", nil)
}

// approvalNotice words the worker notification for an approved
// transaction. Penalties are deductions, not releases.
func approvalNotice(rateType model.RateType, amount float64) (title, body string) {
	if rateType == model.RateTypePenalty {
		return "Penalty applied",
			fmt.Sprintf("A penalty of $%.2f has been deducted from your wallet.", amount)
	}
	return "Payment released",
		fmt.Sprintf("A %s payment of $%.2f has been released to your wallet.",
			rateType.Label(), amount)
}

// releaseForTransaction moves the transaction's money into the worker
// wallet. Penalties debit instead of credit; the returned figure is the
// advisory amount still owed by the worker.
func releaseForTransaction(tx *gorm.DB, row *model.TransactionModel) (float64, error) {
	if model.RateType(row.TransactionRateType) == model.RateTypePenalty {
		return walletService.Debit(tx, row.TransactionWorkerID, row.TransactionAmount)
	}
	return walletService.Release(tx, row.TransactionWorkerID, row.TransactionAmount)
}
