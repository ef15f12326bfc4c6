package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jobController "staffly_backend/internals/features/jobs/controller"
)

// JobAdminRoutes mounts under the authenticated /admin group.
// Final paths:
// - GET  /api/admin/jobs
// - GET  /api/admin/jobs/:id
// - POST /api/admin/jobs
// - PUT  /api/admin/jobs/:id/status
// - PUT  /api/admin/jobs/cancel/:id
func JobAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := jobController.NewJobController(db)

	grp := r.Group("/jobs")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/cancel/:id", ctl.Cancel)
	grp.Put("/:id/status", ctl.UpdateStatus)
	grp.Get("/:id", ctl.GetByID)
}
