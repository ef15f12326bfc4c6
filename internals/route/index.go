package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"staffly_backend/internals/constants"
	applicationRoute "staffly_backend/internals/features/applications/route"
	employerRoute "staffly_backend/internals/features/employers/route"
	jobRoute "staffly_backend/internals/features/jobs/route"
	notificationRoute "staffly_backend/internals/features/notifications/route"
	paymentRoute "staffly_backend/internals/features/payments/route"
	authRoute "staffly_backend/internals/features/users/auth/route"
	withdrawalRoute "staffly_backend/internals/features/wallets/route"
	authMiddleware "staffly_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// Public
	authRoute.AuthRoutes(api, db)
	paymentRoute.PaymentPublicRoutes(api, db)

	// Admin dashboard endpoints
	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.AdminOnly...),
	)
	jobRoute.JobAdminRoutes(admin, db)
	applicationRoute.ApplicationAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	withdrawalRoute.WithdrawalAdminRoutes(admin, db)
	employerRoute.EmployerAdminRoutes(admin, db)
	notificationRoute.NotificationAdminRoutes(admin, db)
}
