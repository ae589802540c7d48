// file: internals/features/portfolio/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolioku_backend/internals/features/portfolio/profile/dto"
	"portfolioku_backend/internals/features/portfolio/profile/model"
	helper "portfolioku_backend/internals/helpers"
)

const cacheKeyProfile = "public:profile"

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

/* ===========================================================
 * Public: GET /api/profile
 * =========================================================== */
func (ctl *ProfileController) Get(c *fiber.Ctx) error {
	data, err := helper.GetCached(cacheKeyProfile, func() (interface{}, error) {
		var m model.ProfileModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("id = ?", model.SingletonID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// no profile yet is not an error, public side shows placeholders
				return (*dto.ProfileResponse)(nil), nil
			}
			return nil, err
		}
		resp := dto.NewProfileResponse(&m)
		return &resp, nil
	})
	if err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "Success get profile", data)
}

/* ===========================================================
 * Auth: POST /api/profile (singleton save, atomic upsert)
 * =========================================================== */
func (ctl *ProfileController) Save(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	body, err := dto.BindSave(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	m := body.ToModel()
	now := time.Now()
	m.UpdatedAt = &now

	// Upsert by the fixed singleton key. One statement, no existence check,
	// so concurrent saves cannot produce a second row.
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "role", "bio", "short_bio", "location",
				"profile_image", "resume_url", "updated_at",
			}),
		}).
		Create(m).Error; err != nil {
		log.Println("[ERROR] Upsert:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to save profile")
	}

	helper.InvalidateCache(cacheKeyProfile)

	var saved model.ProfileModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", model.SingletonID).
		First(&saved).Error; err != nil {
		log.Println("[ERROR] DB reload:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	return helper.JsonUpdated(c, "Profile saved", dto.NewProfileResponse(&saved))
}
