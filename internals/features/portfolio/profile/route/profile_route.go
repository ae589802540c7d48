package routes

import (
	profileController "portfolioku_backend/internals/features/portfolio/profile/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProfilePublicRoutes: read side, no session
func ProfilePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profileController.NewProfileController(db)
	r.Get("/profile", ctl.Get)
}

// ProfileAdminRoutes: singleton save
func ProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profileController.NewProfileController(db)
	r.Post("/profile", ctl.Save)
}
