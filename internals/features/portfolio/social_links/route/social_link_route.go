package routes

import (
	socialLinkController "portfolioku_backend/internals/features/portfolio/social_links/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SocialLinkPublicRoutes: read side, no session
func SocialLinkPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := socialLinkController.NewSocialLinkController(db)
	r.Get("/social-links", ctl.List)
}

// SocialLinkAdminRoutes: mutations
func SocialLinkAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := socialLinkController.NewSocialLinkController(db)
	r.Post("/social-links", ctl.Create)
	r.Put("/social-links/:id", ctl.Update)
	r.Delete("/social-links/:id", ctl.Delete)
}
