package routes

import (
	timelineController "portfolioku_backend/internals/features/portfolio/timeline/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TimelinePublicRoutes: experience + education read side
func TimelinePublicRoutes(r fiber.Router, db *gorm.DB) {
	expCtl := timelineController.NewExperienceController(db)
	eduCtl := timelineController.NewEducationController(db)

	r.Get("/experience", expCtl.List)
	r.Get("/education", eduCtl.List)
}

// TimelineAdminRoutes: mutations
func TimelineAdminRoutes(r fiber.Router, db *gorm.DB) {
	expCtl := timelineController.NewExperienceController(db)
	eduCtl := timelineController.NewEducationController(db)

	r.Post("/experience", expCtl.Create)
	r.Put("/experience/:id", expCtl.Update)
	r.Delete("/experience/:id", expCtl.Delete)

	r.Post("/education", eduCtl.Create)
	r.Put("/education/:id", eduCtl.Update)
	r.Delete("/education/:id", eduCtl.Delete)
}
