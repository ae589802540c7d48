package routes

import (
	contactController "portfolioku_backend/internals/features/portfolio/contact/controller"
	middlewares "portfolioku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactPublicRoutes: message intake
func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := contactController.NewContactController(db)
	r.Post("/contact", middlewares.ContactRateLimiter(), ctl.Create)
}

// ContactAdminRoutes: admin inbox
func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := contactController.NewContactController(db)
	r.Get("/contact", ctl.List)
	r.Delete("/contact/:id", ctl.Delete)
}
