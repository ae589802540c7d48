package routes

import (
	projectController "portfolioku_backend/internals/features/portfolio/projects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProjectPublicRoutes: list + detail, no session
func ProjectPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := projectController.NewProjectController(db)
	r.Get("/projects", ctl.List)
	r.Get("/projects/:id", ctl.GetByID)
}

// ProjectAdminRoutes: mutations
func ProjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := projectController.NewProjectController(db)
	r.Post("/projects", ctl.Create)
	r.Put("/projects/:id", ctl.Update)
	r.Delete("/projects/:id", ctl.Delete)
}
