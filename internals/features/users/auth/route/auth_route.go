package routes

import (
	authController "portfolioku_backend/internals/features/users/auth/controller"
	middlewares "portfolioku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthPublicRoutes: login/logout/setup (no session required)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", ctl.Logout)

	// Original bootstrap endpoint: GET /api/setup
	r.Get("/setup", ctl.Setup)
}

// AuthUserRoutes: endpoints that need a valid session
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Get("/me", ctl.Me)
	auth.Post("/change-password", ctl.ChangePassword)
}
