// file: internals/features/templates/renderer/route/page_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rendererController "portfolioku_backend/internals/features/templates/renderer/controller"
)

// PortfolioPageRoutes mounts the server-rendered public site. Lives outside
// /api on purpose: this is the page visitors share, not a JSON surface.
func PortfolioPageRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := rendererController.NewPortfolioPageController(db)

	r.Get("/portfolio/:username", ctrl.Get)
}
