package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transactionController "staffly_backend/internals/features/payments/controller"
)

// PaymentPublicRoutes mounts the unauthenticated gateway webhook.
// Final path: POST /api/payments/notification
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := transactionController.NewTransactionController(db)
	r.Post("/payments/notification", ctl.Webhook)
}
