package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "staffly_backend/internals/features/applications/dto"
	model "staffly_backend/internals/features/applications/model"
	jobModel "staffly_backend/internals/features/jobs/model"
	notifService "staffly_backend/internals/features/notifications/service"
	helper "staffly_backend/internals/helpers"
)

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/admin/applications
func (h *ApplicationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.ApplicationModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("application_status = ?", strings.ToLower(status))
	}
	jobID, err := helper.ParseUUIDQuery(c, "job_id")
	if err != nil {
		return err
	}
	if jobID != nil {
		q = q.Where("application_job_id = ?", *jobID)
	}
	shiftID, err := helper.ParseUUIDQuery(c, "shift_id")
	if err != nil {
		return err
	}
	if shiftID != nil {
		q = q.Where("application_shift_id = ?", *shiftID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("application_worker_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count applications")
	}

	var rows []model.ApplicationModel
	if err := q.Order("application_applied_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load applications")
	}

	data := dto.FromModels(rows)
	return helper.JsonList(c, "Applications retrieved", data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

/* ======================= CREATE ======================= */
// POST /api/admin/applications
func (h *ApplicationController) Create(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var job jobModel.JobModel
	if err := h.DB.Where("job_id = ?", req.ApplicationJobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Job not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load job")
	}
	switch jobModel.JobStatus(job.JobStatus) {
	case jobModel.JobStatusActive, jobModel.JobStatusUpcoming:
		// accepting applications
	default:
		return fiber.NewError(fiber.StatusConflict, "Job is not accepting applications")
	}

	var shift jobModel.ShiftModel
	if err := h.DB.Where("shift_id = ? AND shift_job_id = ?", req.ApplicationShiftID, req.ApplicationJobID).
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found for this job")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load shift")
	}

	app := req.ToModel()
	if err := h.DB.Create(app).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Worker already applied to this shift")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create application")
	}
	return helper.JsonCreated(c, "Application created", dto.FromModel(*app))
}

/* ======================= APPROVE ======================= */
// POST /api/admin/applications/:id/approve
func (h *ApplicationController) Approve(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApproveApplicationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}
	}

	var app model.ApplicationModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("application_id = ?", id).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Application not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load application")
		}

		from := model.ApplicationStatus(app.ApplicationStatus)
		if !model.CanTransition(from, model.ApplicationStatusApproved) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Application is already %s", from.Label()))
		}

		// Capacity: approved headcount may not exceed vacancy + standby.
		var shift jobModel.ShiftModel
		if err := tx.Where("shift_id = ?", app.ApplicationShiftID).First(&shift).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load shift")
		}
		var approved int64
		if err := tx.Model(&model.ApplicationModel{}).
			Where("application_shift_id = ? AND application_status IN ?",
				app.ApplicationShiftID,
				[]string{string(model.ApplicationStatusApproved), string(model.ApplicationStatusUpcoming)}).
			Count(&approved).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to count approvals")
		}
		if !model.ShiftHasCapacity(approved, shift.ShiftVacancy, shift.ShiftStandby) {
			return fiber.NewError(fiber.StatusConflict, "Shift is already fully staffed")
		}

		updates := map[string]any{"application_status": string(model.ApplicationStatusApproved)}
		if notes := req.TrimmedNotes(); notes != nil {
			updates["application_admin_notes"] = *notes
			app.ApplicationAdminNotes = notes
		}
		if err := tx.Model(&model.ApplicationModel{}).
			Where("application_id = ?", id).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve application")
		}
		app.ApplicationStatus = string(model.ApplicationStatusApproved)
		return nil
	})
	if err != nil {
		return err
	}

	notifService.Push(h.DB, app.ApplicationWorkerID, "Application approved",
		"Your application has been approved. See you on shift.",
		map[string]any{"application_id": app.ApplicationID.String()})

	return helper.JsonUpdated(c, "Application approved", dto.FromModel(app))
}

/* ======================= REJECT ======================= */
// POST /api/admin/applications/:id/reject
func (h *ApplicationController) Reject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.RejectApplicationRequest
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

	var app model.ApplicationModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("application_id = ?", id).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Application not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load application")
		}

		from := model.ApplicationStatus(app.ApplicationStatus)
		if !model.CanTransition(from, model.ApplicationStatusRejected) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Application is already %s", from.Label()))
		}

		if err := tx.Model(&model.ApplicationModel{}).
			Where("application_id = ?", id).
			Updates(map[string]any{
				"application_status":        string(model.ApplicationStatusRejected),
				"application_reject_reason": reason,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to reject application")
		}
		app.ApplicationStatus = string(model.ApplicationStatusRejected)
		app.ApplicationRejectReason = &reason
		return nil
	})
	if err != nil {
		return err
	}

	notifService.Push(h.DB, app.ApplicationWorkerID, "Application rejected", reason,
		map[string]any{"application_id": app.ApplicationID.String()})

	return helper.JsonUpdated(c, "Application rejected", dto.FromModel(app))
}

/* ======================= GENERIC STATUS ======================= */
// PUT /api/admin/applications/:id/status
// Bookkeeping states only; approve/reject must go through their
// dedicated endpoints.
func (h *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	to := model.ApplicationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !to.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown status %q", req.Status))
	}
	if model.IsDecision(to) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Approved and rejected are set through their dedicated endpoints")
	}

	var app model.ApplicationModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).
			Where("application_id = ?", id).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Application not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load application")
		}

		from := model.ApplicationStatus(app.ApplicationStatus)
		if !model.CanTransition(from, to) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Cannot move application from %s to %s", from.Label(), to.Label()))
		}

		if err := tx.Model(&model.ApplicationModel{}).
			Where("application_id = ?", id).
			Update("application_status", string(to)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
		}
		app.ApplicationStatus = string(to)
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Application status updated", dto.FromModel(app))
}
