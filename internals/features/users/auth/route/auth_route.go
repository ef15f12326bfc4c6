package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "staffly_backend/internals/features/users/auth/controller"
)

// AuthRoutes mounts the public auth endpoints.
// Final paths: /api/auth/login, /api/auth/logout
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/login", ctl.Login)
	grp.Post("/logout", ctl.Logout)
}
