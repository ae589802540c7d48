// file: internals/features/portfolio/timeline/controller/experience_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/portfolio/timeline/dto"
	"portfolioku_backend/internals/features/portfolio/timeline/model"
	helper "portfolioku_backend/internals/helpers"
)

const cacheKeyExperiences = "public:experiences"

type ExperienceController struct {
	DB *gorm.DB
}

func NewExperienceController(db *gorm.DB) *ExperienceController {
	return &ExperienceController{DB: db}
}

/* ===========================================================
 * Public: GET /api/experience (start_date DESC)
 * =========================================================== */
func (ctl *ExperienceController) List(c *fiber.Ctx) error {
	data, err := helper.GetCached(cacheKeyExperiences, func() (interface{}, error) {
		var ms []model.ExperienceModel
		if err := ctl.DB.WithContext(c.Context()).
			Order("start_date DESC").
			Find(&ms).Error; err != nil {
			return nil, err
		}
		resp := make([]dto.ExperienceResponse, 0, len(ms))
		for i := range ms {
			resp = append(resp, dto.NewExperienceResponse(&ms[i]))
		}
		return resp, nil
	})
	if err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}
	return helper.JsonList(c, "Success get experiences", data, nil)
}

/* ===========================================================
 * Auth: POST /api/experience
 * =========================================================== */
func (ctl *ExperienceController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	body, err := dto.BindCreateExperience(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	m, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create experience")
	}

	helper.InvalidateCache(cacheKeyExperiences)
	return helper.JsonCreated(c, "Experience created", dto.NewExperienceResponse(m))
}

/* ===========================================================
 * Auth: PUT /api/experience/:id
 * =========================================================== */
func (ctl *ExperienceController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	body, err := dto.BindUpdateExperience(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	var m model.ExperienceModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Experience not found")
		}
		log.Println("[ERROR] DB First:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	if err := body.ApplyToModelPartial(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid date format")
	}
	now := time.Now()
	m.UpdatedAt = &now
	if err := tx.Save(&m).Error; err != nil {
		log.Println("[ERROR] Save:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update experience")
	}

	helper.InvalidateCache(cacheKeyExperiences)
	return helper.JsonUpdated(c, "Experience updated", dto.NewExperienceResponse(&m))
}

/* ===========================================================
 * Auth: DELETE /api/experience/:id (hard delete)
 * =========================================================== */
func (ctl *ExperienceController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		Delete(&model.ExperienceModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to delete experience")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Experience not found")
	}

	helper.InvalidateCache(cacheKeyExperiences)
	return helper.JsonDeleted(c, "Experience deleted", fiber.Map{"id": id})
}
