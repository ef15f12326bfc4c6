package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationModel "staffly_backend/internals/features/applications/model"
	dto "staffly_backend/internals/features/jobs/dto"
	model "staffly_backend/internals/features/jobs/model"
	notifService "staffly_backend/internals/features/notifications/service"
	helper "staffly_backend/internals/helpers"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/admin/jobs
func (h *JobController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.JobModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("job_status = ?", strings.ToLower(status))
	}
	start, end, err := helper.ParseDateRange(c)
	if err != nil {
		return err
	}
	if start != nil {
		q = q.Where("job_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("job_date < ?", *end)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("job_title ILIKE ?", "%"+search+"%")
	}
	employerID, err := helper.ParseUUIDQuery(c, "employer_id")
	if err != nil {
		return err
	}
	if employerID != nil {
		q = q.Where("job_employer_id = ?", *employerID)
	}
	outletID, err := helper.ParseUUIDQuery(c, "outlet_id")
	if err != nil {
		return err
	}
	if outletID != nil {
		q = q.Where("job_outlet_id = ?", *outletID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count jobs")
	}

	var rows []model.JobModel
	if err := q.Preload("JobShifts").
		Order("job_date DESC, job_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load jobs")
	}

	data := dto.FromModels(rows)
	return helper.JsonList(c, "Jobs retrieved", data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

/* ======================== GET BY ID ======================== */
// GET /api/admin/jobs/:id
func (h *JobController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.JobModel
	if err := h.DB.Preload("JobShifts").Where("job_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Job not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load job")
	}
	return helper.JsonOK(c, "Job retrieved", dto.FromModel(row))
}

/* ======================= CREATE ======================= */
// POST /api/admin/jobs
func (h *JobController) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	for i, s := range req.JobShifts {
		if !s.ShiftEndTime.After(s.ShiftStartTime) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("shift %d: end time must be after start time", i+1))
		}
	}

	job := req.ToModel()
	if err := h.DB.Create(job).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create job")
	}
	return helper.JsonCreated(c, "Job created", dto.FromModel(*job))
}

/* ======================= STATUS ======================= */
// PUT /api/admin/jobs/:id/status
// Moves a job along the lifecycle: pending jobs are activated here
// before they can take applications, and deactivation also goes
// through here. Cancelling has its own endpoint.
func (h *JobController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateJobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	to := model.JobStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !to.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown job status %q", req.Status))
	}
	if to == model.JobStatusCancelled {
		return fiber.NewError(fiber.StatusBadRequest, "Use the cancel endpoint to cancel a job")
	}

	var job model.JobModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).Preload("JobShifts").
			Where("job_id = ?", id).First(&job).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Job not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load job")
		}

		from := model.JobStatus(job.JobStatus)
		if !model.CanTransition(from, to) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Job cannot move from %s to %s", from.Label(), to.Label()))
		}

		if err := tx.Model(&model.JobModel{}).
			Where("job_id = ?", id).
			Update("job_status", string(to)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update job status")
		}
		job.JobStatus = string(to)
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Job status updated", dto.FromModel(job))
}

/* ======================= CANCEL ======================= */
// PUT /api/admin/jobs/cancel/:id
func (h *JobController) Cancel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var job model.JobModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(helper.LockForUpdate()).Preload("JobShifts").
			Where("job_id = ?", id).First(&job).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Job not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load job")
		}

		from := model.JobStatus(job.JobStatus)
		if !model.CanCancel(from) {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Job in status %q cannot be cancelled", from.Label()))
		}

		if err := tx.Model(&model.JobModel{}).
			Where("job_id = ?", id).
			Update("job_status", string(model.JobStatusCancelled)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to cancel job")
		}
		job.JobStatus = string(model.JobStatusCancelled)
		return nil
	})
	if err != nil {
		return err
	}

	// Best effort: tell everyone who applied. A notification failure must
	// not undo the cancel.
	var apps []applicationModel.ApplicationModel
	if err := h.DB.Where("application_job_id = ? AND application_status IN ?",
		id, []string{
			string(applicationModel.ApplicationStatusPending),
			string(applicationModel.ApplicationStatusApproved),
			string(applicationModel.ApplicationStatusUpcoming),
		}).Find(&apps).Error; err == nil {
		for _, a := range apps {
			notifService.Push(h.DB, a.ApplicationWorkerID, "Job cancelled",
				fmt.Sprintf("The job %q on %s has been cancelled.", job.JobTitle, job.JobDate.Format("2006-01-02")),
				map[string]any{"job_id": job.JobID.String()})
		}
	}

	return helper.JsonUpdated(c, "Job cancelled", dto.FromModel(job))
}
