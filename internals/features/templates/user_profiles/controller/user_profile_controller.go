// file: internals/features/templates/user_profiles/controller/user_profile_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/templates/registry"
	"portfolioku_backend/internals/features/templates/user_profiles/dto"
	"portfolioku_backend/internals/features/templates/user_profiles/model"
	helper "portfolioku_backend/internals/helpers"
)

func portfolioCacheKey(username string) string {
	return "public:portfolio:" + username
}

// PortfolioPageCacheKey keys the rendered HTML page for a username. Exported
// so the page controller caches under the same key this controller
// invalidates on template/username changes.
func PortfolioPageCacheKey(username string) string {
	return "public:portfolio_page:" + username
}

func invalidatePortfolio(usernames ...string) {
	keys := make([]string, 0, len(usernames)*2)
	for _, u := range usernames {
		keys = append(keys, portfolioCacheKey(u), PortfolioPageCacheKey(u))
	}
	helper.InvalidateCache(keys...)
}

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

/* ===========================================================
 * Auth: GET /api/user-profile (lazy default create, own record)
 * =========================================================== */
func (ctl *UserProfileController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.UserProfileModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// first access: create the default record, username from the
			// email local part
			username := "user"
			if email := helper.GetUserEmailFromToken(c); email != "" {
				if at := strings.Index(email, "@"); at > 0 {
					username = email[:at]
				}
			}
			def := model.NewDefault(userID, username)
			if err := tx.Create(def).Error; err != nil {
				log.Println("[ERROR] Create:", err)
				return helper.JsonError(c, http.StatusInternalServerError, "Failed to create user profile")
			}
			return helper.JsonOK(c, "Success get user profile", dto.NewUserProfileResponse(def))
		}
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Success get user profile", dto.NewUserProfileResponse(&m))
}

/* ===========================================================
 * Auth: POST /api/user-profile (shallow-merge upsert by user_id)
 * =========================================================== */
func (ctl *UserProfileController) UpsertMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	body, err := dto.BindUpdate(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	// reject unknown template ids before touching the store
	if body.SelectedTemplate != nil && !registry.IsValid(registry.TemplateID(*body.SelectedTemplate)) {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid template")
	}

	var m model.UserProfileModel
	tx := ctl.DB.WithContext(c.Context())

	if err := tx.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			username := "user"
			if email := helper.GetUserEmailFromToken(c); email != "" {
				if at := strings.Index(email, "@"); at > 0 {
					username = email[:at]
				}
			}
			def := model.NewDefault(userID, username)
			body.ApplyToModel(def)

			if err := tx.Create(def).Error; err != nil {
				log.Println("[ERROR] Create:", err)
				return helper.JsonError(c, http.StatusInternalServerError, "Failed to create user profile")
			}
			invalidatePortfolio(def.Username)
			return helper.JsonCreated(c, "User profile created", dto.NewUserProfileResponse(def))
		}
		log.Println("[ERROR] DB First:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	oldUsername := m.Username
	body.ApplyToModel(&m)
	now := time.Now()
	m.UpdatedAt = &now

	if err := tx.Save(&m).Error; err != nil {
		log.Println("[ERROR] Save:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update user profile")
	}

	invalidatePortfolio(oldUsername, m.Username)
	return helper.JsonUpdated(c, "User profile updated", dto.NewUserProfileResponse(&m))
}

/* ===========================================================
 * Public: GET /api/portfolio/:username (never creates)
 * =========================================================== */
func (ctl *UserProfileController) PublicGetByUsername(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return helper.JsonError(c, http.StatusBadRequest, "Username required")
	}

	m, err := ResolveByUsername(ctl.DB.WithContext(c.Context()), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Portfolio not found")
		}
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Success get portfolio", dto.NewUserProfileResponse(m))
}

// ResolveByUsername is the public tenant lookup shared with the HTML page
// controller. It never auto-creates.
func ResolveByUsername(db *gorm.DB, username string) (*model.UserProfileModel, error) {
	var m model.UserProfileModel
	if err := db.Where("username = ?", username).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
