package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "staffly_backend/internals/features/employers/dto"
	model "staffly_backend/internals/features/employers/model"
	helper "staffly_backend/internals/helpers"
)

type EmployerController struct {
	DB *gorm.DB
}

func NewEmployerController(db *gorm.DB) *EmployerController {
	return &EmployerController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/admin/employers
func (h *EmployerController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.EmployerModel{})

	if status := strings.TrimSpace(c.Query("agreement_status")); status != "" {
		q = q.Where("employer_agreement_status = ?", strings.ToLower(status))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("employer_legal_name ILIKE ? OR employer_contact_person ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count employers")
	}

	var rows []model.EmployerModel
	if err := q.Preload("EmployerOutlets").
		Order("employer_legal_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load employers")
	}

	data := dto.FromModels(rows)
	return helper.JsonList(c, "Employers retrieved", data, helper.BuildPagination(total, paging.Page, paging.PerPage, len(data)))
}

/* ======================== GET BY ID ======================== */
// GET /api/admin/employers/:id
func (h *EmployerController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var row model.EmployerModel
	if err := h.DB.Preload("EmployerOutlets").Where("employer_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Employer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load employer")
	}
	return helper.JsonOK(c, "Employer retrieved", dto.FromModel(row))
}

/* ======================= CREATE ======================= */
// POST /api/admin/employers
func (h *EmployerController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create employer")
	}
	return helper.JsonCreated(c, "Employer created", dto.FromModel(*row))
}

/* ======================= UPDATE ======================= */
// PUT /api/admin/employers/:id
func (h *EmployerController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.EmployerModel
	if err := h.DB.Where("employer_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Employer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load employer")
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update employer")
	}
	return helper.JsonUpdated(c, "Employer updated", dto.FromModel(row))
}

/* ======================= DELETE ======================= */
// DELETE /api/admin/employers/:id
func (h *EmployerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := h.DB.Where("employer_id = ?", id).Delete(&model.EmployerModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete employer")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Employer not found")
	}
	return helper.JsonDeleted(c, "Employer deleted", fiber.Map{"employer_id": id})
}

/* ======================= OUTLETS ======================= */
// GET /api/admin/employers/:id/outlets
func (h *EmployerController) ListOutlets(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	rows := make([]model.OutletModel, 0)
	if err := h.DB.Where("outlet_employer_id = ?", id).
		Order("outlet_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load outlets")
	}
	return helper.JsonOK(c, "Outlets retrieved", rows)
}

// POST /api/admin/employers/:id/outlets
func (h *EmployerController) CreateOutlet(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateOutletRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var employer model.EmployerModel
	if err := h.DB.Where("employer_id = ?", id).First(&employer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Employer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load employer")
	}

	outlet := model.OutletModel{
		OutletEmployerID: id,
		OutletName:       req.OutletName,
		OutletAddress:    req.OutletAddress,
	}
	if err := h.DB.Create(&outlet).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create outlet")
	}
	return helper.JsonCreated(c, "Outlet created", outlet)
}
