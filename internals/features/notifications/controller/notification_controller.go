package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "staffly_backend/internals/features/notifications/model"
	helper "staffly_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/admin/notifications
func (h *NotificationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.NotificationModel{})

	recipientID, err := helper.ParseUUIDQuery(c, "recipient_id")
	if err != nil {
		return err
	}
	if recipientID != nil {
		q = q.Where("notification_recipient_id = ?", *recipientID)
	}
	if unread := strings.TrimSpace(c.Query("unread")); unread == "true" || unread == "1" {
		q = q.Where("notification_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count notifications")
	}

	rows := make([]model.NotificationModel, 0)
	if err := q.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load notifications")
	}

	return helper.JsonList(c, "Notifications retrieved", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

/* ======================= MARK READ ======================= */
// PUT /api/admin/notifications/:id/read
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.NotificationModel
	if err := h.DB.Where("notification_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load notification")
	}

	if !row.NotificationRead {
		now := time.Now()
		row.NotificationRead = true
		row.NotificationReadAt = &now
		if err := h.DB.Model(&model.NotificationModel{}).
			Where("notification_id = ?", id).
			Updates(map[string]any{
				"notification_read":    true,
				"notification_read_at": now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark notification read")
		}
	}

	return helper.JsonUpdated(c, "Notification marked read", row)
}
