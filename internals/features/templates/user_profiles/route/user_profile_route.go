package routes

import (
	templateController "portfolioku_backend/internals/features/templates/user_profiles/controller"
	"portfolioku_backend/internals/features/templates/registry"
	helper "portfolioku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserProfilePublicRoutes: tenant resolution + template catalog
func UserProfilePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := templateController.NewUserProfileController(db)

	r.Get("/portfolio/:username", ctl.PublicGetByUsername)

	// catalog for the selection UI
	r.Get("/templates", func(c *fiber.Ctx) error {
		return helper.JsonList(c, "Success get templates", registry.All(), nil)
	})
}

// UserProfileUserRoutes: self-service template selection
func UserProfileUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := templateController.NewUserProfileController(db)

	r.Get("/user-profile", ctl.GetMine)
	r.Post("/user-profile", ctl.UpsertMine)
}
