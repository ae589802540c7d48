// file: internals/features/portfolio/timeline/controller/education_controller.go
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

const cacheKeyEducations = "public:educations"

type EducationController struct {
	DB *gorm.DB
}

func NewEducationController(db *gorm.DB) *EducationController {
	return &EducationController{DB: db}
}

/* ===========================================================
 * Public: GET /api/education (start_date DESC)
 * =========================================================== */
func (ctl *EducationController) List(c *fiber.Ctx) error {
	data, err := helper.GetCached(cacheKeyEducations, func() (interface{}, error) {
		var ms []model.EducationModel
		if err := ctl.DB.WithContext(c.Context()).
			Order("start_date DESC").
			Find(&ms).Error; err != nil {
			return nil, err
		}
		resp := make([]dto.EducationResponse, 0, len(ms))
		for i := range ms {
			resp = append(resp, dto.NewEducationResponse(&ms[i]))
		}
		return resp, nil
	})
	if err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}
	return helper.JsonList(c, "Success get educations", data, nil)
}

/* ===========================================================
 * Auth: POST /api/education
 * =========================================================== */
func (ctl *EducationController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	body, err := dto.BindCreateEducation(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	m, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create education")
	}

	helper.InvalidateCache(cacheKeyEducations)
	return helper.JsonCreated(c, "Education created", dto.NewEducationResponse(m))
}

/* ===========================================================
 * Auth: PUT /api/education/:id
 * =========================================================== */
func (ctl *EducationController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	body, err := dto.BindUpdateEducation(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	var m model.EducationModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Education not found")
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
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update education")
	}

	helper.InvalidateCache(cacheKeyEducations)
	return helper.JsonUpdated(c, "Education updated", dto.NewEducationResponse(&m))
}

/* ===========================================================
 * Auth: DELETE /api/education/:id (hard delete)
 * =========================================================== */
func (ctl *EducationController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		Delete(&model.EducationModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to delete education")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Education not found")
	}

	helper.InvalidateCache(cacheKeyEducations)
	return helper.JsonDeleted(c, "Education deleted", fiber.Map{"id": id})
}
