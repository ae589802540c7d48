// file: internals/route/index.go
package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoute "portfolioku_backend/internals/features/portfolio/contact/route"
	profileRoute "portfolioku_backend/internals/features/portfolio/profile/route"
	projectRoute "portfolioku_backend/internals/features/portfolio/projects/route"
	skillRoute "portfolioku_backend/internals/features/portfolio/skills/route"
	socialLinkRoute "portfolioku_backend/internals/features/portfolio/social_links/route"
	timelineRoute "portfolioku_backend/internals/features/portfolio/timeline/route"
	pageRoute "portfolioku_backend/internals/features/templates/renderer/route"
	userProfileRoute "portfolioku_backend/internals/features/templates/user_profiles/route"
	authRoute "portfolioku_backend/internals/features/users/auth/route"
	middleware "portfolioku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature. Two surfaces:
//   - public:  no token, read-only content + login + contact form
//   - admin:   same /api prefix behind AuthJWT, all writes
//
// plus the server-rendered /portfolio/:username page at the root.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🌐 Public site (HTML)
	pageRoute.PortfolioPageRoutes(app, db)

	// 🌐 Public API
	public := app.Group("/api")
	authRoute.AuthPublicRoutes(public, db)
	profileRoute.ProfilePublicRoutes(public, db)
	skillRoute.SkillPublicRoutes(public, db)
	projectRoute.ProjectPublicRoutes(public, db)
	timelineRoute.TimelinePublicRoutes(public, db)
	socialLinkRoute.SocialLinkPublicRoutes(public, db)
	contactRoute.ContactPublicRoutes(public, db)
	userProfileRoute.UserProfilePublicRoutes(public, db)

	// 🔒 Admin API (token required)
	admin := app.Group("/api",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	authRoute.AuthUserRoutes(admin, db)
	profileRoute.ProfileAdminRoutes(admin, db)
	skillRoute.SkillAdminRoutes(admin, db)
	projectRoute.ProjectAdminRoutes(admin, db)
	timelineRoute.TimelineAdminRoutes(admin, db)
	socialLinkRoute.SocialLinkAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	userProfileRoute.UserProfileUserRoutes(admin, db)
}
