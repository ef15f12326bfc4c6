package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employerController "staffly_backend/internals/features/employers/controller"
)

// EmployerAdminRoutes mounts under the authenticated /admin group.
// Final paths:
// - GET    /api/admin/employers
// - POST   /api/admin/employers
// - GET    /api/admin/employers/:id
// - PUT    /api/admin/employers/:id
// - DELETE /api/admin/employers/:id
// - GET    /api/admin/employers/:id/outlets
// - POST   /api/admin/employers/:id/outlets
func EmployerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := employerController.NewEmployerController(db)

	grp := r.Group("/employers")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Get("/:id/outlets", ctl.ListOutlets)
	grp.Post("/:id/outlets", ctl.CreateOutlet)
}
