package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "staffly_backend/internals/features/notifications/controller"
)

// NotificationAdminRoutes mounts under the authenticated /admin group.
// Final paths: /api/admin/notifications, /api/admin/notifications/:id/read
func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	grp := r.Group("/notifications")
	grp.Get("/", ctl.List)
	grp.Put("/:id/read", ctl.MarkRead)
}
