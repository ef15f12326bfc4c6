package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "staffly_backend/internals/features/applications/controller"
)

// ApplicationAdminRoutes mounts under the authenticated /admin group.
// Final paths:
// - GET  /api/admin/applications
// - POST /api/admin/applications
// - POST /api/admin/applications/:id/approve
// - POST /api/admin/applications/:id/reject
// - PUT  /api/admin/applications/:id/status
func ApplicationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := applicationController.NewApplicationController(db)

	grp := r.Group("/applications")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Post("/:id/approve", ctl.Approve)
	grp.Post("/:id/reject", ctl.Reject)
	grp.Put("/:id/status", ctl.UpdateStatus)
}
