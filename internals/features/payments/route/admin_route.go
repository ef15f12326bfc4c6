package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transactionController "staffly_backend/internals/features/payments/controller"
)

// PaymentAdminRoutes mounts under the authenticated /admin group.
// Final paths:
// - GET  /api/admin/payments/transactions
// - POST /api/admin/payments/transactions
// - PUT  /api/admin/payments/transactions/:id/approve
// - PUT  /api/admin/payments/transactions/:id/reject
// - POST /api/admin/payments/transactions/:id/refund
// - POST /api/admin/payments/transactions/:id/card
// - POST /api/admin/transactions/:id/regenerate (legacy dashboard path)
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := transactionController.NewTransactionController(db)

	grp := r.Group("/payments/transactions")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id/approve", ctl.Approve)
	grp.Put("/:id/reject", ctl.Reject)
	grp.Post("/:id/refund", ctl.Refund)
	grp.Post("/:id/card", ctl.PayWithCard)

	// Regenerate kept at its historical prefix for dashboard compatibility.
	r.Post("/transactions/:id/regenerate", ctl.Regenerate)
}
