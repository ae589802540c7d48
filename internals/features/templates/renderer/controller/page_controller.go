// file: internals/features/templates/renderer/controller/page_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectModel "portfolioku_backend/internals/features/portfolio/projects/model"
	profileModel "portfolioku_backend/internals/features/portfolio/profile/model"
	skillModel "portfolioku_backend/internals/features/portfolio/skills/model"
	socialModel "portfolioku_backend/internals/features/portfolio/social_links/model"
	timelineModel "portfolioku_backend/internals/features/portfolio/timeline/model"
	"portfolioku_backend/internals/features/templates/registry"
	"portfolioku_backend/internals/features/templates/renderer"
	userProfileCtl "portfolioku_backend/internals/features/templates/user_profiles/controller"
	helper "portfolioku_backend/internals/helpers"
)

type PortfolioPageController struct {
	DB *gorm.DB
}

func NewPortfolioPageController(db *gorm.DB) *PortfolioPageController {
	return &PortfolioPageController{DB: db}
}

// =============================
// Get Portfolio Page (PUBLIC)
// GET /portfolio/:username
// =============================
func (ctrl *PortfolioPageController) Get(c *fiber.Ctx) error {
	username := c.Params("username")

	html, err := helper.GetCached(userProfileCtl.PortfolioPageCacheKey(username), func() (interface{}, error) {
		up, err := userProfileCtl.ResolveByUsername(ctrl.DB.WithContext(c.Context()), username)
		if err != nil {
			return nil, err
		}
		data, err := ctrl.loadPortfolioData(c)
		if err != nil {
			return nil, err
		}
		return renderer.Render(registry.TemplateID(up.SelectedTemplate), up, data)
	})

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusNotFound).SendString(renderer.NotFoundPage())
		}
		log.Println("[ERROR] render portfolio page:", err)
		return fiber.NewError(http.StatusInternalServerError, "Failed to render portfolio")
	}

	return c.SendString(html.(string))
}

// loadPortfolioData fetches every section in one pass so the layouts stay
// pure. Ordering mirrors the JSON list endpoints.
func (ctrl *PortfolioPageController) loadPortfolioData(c *fiber.Ctx) (renderer.PortfolioData, error) {
	db := ctrl.DB.WithContext(c.Context())
	var data renderer.PortfolioData

	var profile profileModel.ProfileModel
	switch err := db.First(&profile, "id = ?", profileModel.SingletonID).Error; {
	case err == nil:
		data.Profile = &profile
	case errors.Is(err, gorm.ErrRecordNotFound):
		// placeholders take over
	default:
		return data, err
	}

	if err := db.Model(&skillModel.SkillModel{}).Order("category ASC, name ASC").Find(&data.Skills).Error; err != nil {
		return data, err
	}
	if err := db.Model(&projectModel.ProjectModel{}).Order("created_at DESC").Find(&data.Projects).Error; err != nil {
		return data, err
	}
	if err := db.Model(&timelineModel.ExperienceModel{}).Order("start_date DESC").Find(&data.Experiences).Error; err != nil {
		return data, err
	}
	if err := db.Model(&timelineModel.EducationModel{}).Order("start_date DESC").Find(&data.Educations).Error; err != nil {
		return data, err
	}
	if err := db.Model(&socialModel.SocialLinkModel{}).Order("display_order ASC").Find(&data.SocialLinks).Error; err != nil {
		return data, err
	}

	return data, nil
}
