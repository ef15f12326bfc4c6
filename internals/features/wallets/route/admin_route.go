package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cashController "staffly_backend/internals/features/wallets/controller"
)

// WithdrawalAdminRoutes mounts under the authenticated /admin group.
// Final paths:
// - GET  /api/admin/withdrawals
// - POST /api/admin/withdrawals
// - PUT  /api/admin/withdrawals/process/:id
func WithdrawalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cashController.NewCashTransactionController(db)

	grp := r.Group("/withdrawals")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/process/:id", ctl.Process)
}
