package routes

import (
	skillController "portfolioku_backend/internals/features/portfolio/skills/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SkillPublicRoutes: read side, no session
func SkillPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := skillController.NewSkillController(db)
	r.Get("/skills", ctl.List)
}

// SkillAdminRoutes: mutations
func SkillAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := skillController.NewSkillController(db)
	r.Post("/skills", ctl.Create)
	r.Put("/skills/:id", ctl.Update)
	r.Delete("/skills/:id", ctl.Delete)
}
