// file: internals/features/portfolio/skills/controller/skill_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/portfolio/skills/dto"
	"portfolioku_backend/internals/features/portfolio/skills/model"
	helper "portfolioku_backend/internals/helpers"
)

const cacheKeySkills = "public:skills"

type SkillController struct {
	DB *gorm.DB
}

func NewSkillController(db *gorm.DB) *SkillController {
	return &SkillController{DB: db}
}

/* ===========================================================
 * Public: GET /api/skills (category ASC, name ASC)
 * =========================================================== */
func (ctl *SkillController) List(c *fiber.Ctx) error {
	data, err := helper.GetCached(cacheKeySkills, func() (interface{}, error) {
		var ms []model.SkillModel
		if err := ctl.DB.WithContext(c.Context()).
			Order("category ASC").
			Order("name ASC").
			Find(&ms).Error; err != nil {
			return nil, err
		}
		resp := make([]dto.SkillResponse, 0, len(ms))
		for i := range ms {
			resp = append(resp, dto.NewSkillResponse(&ms[i]))
		}
		return resp, nil
	})
	if err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}
	return helper.JsonList(c, "Success get skills", data, nil)
}

/* ===========================================================
 * Auth: POST /api/skills
 * =========================================================== */
func (ctl *SkillController) Create(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	body, err := dto.BindCreate(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	m := body.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create skill")
	}

	helper.InvalidateCache(cacheKeySkills)
	return helper.JsonCreated(c, "Skill created", dto.NewSkillResponse(m))
}

/* ===========================================================
 * Auth: PUT /api/skills/:id
 * =========================================================== */
func (ctl *SkillController) Update(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	body, err := dto.BindUpdate(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	var m model.SkillModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Skill not found")
		}
		log.Println("[ERROR] DB First:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	body.ApplyToModelPartial(&m)
	now := time.Now()
	m.UpdatedAt = &now
	if err := tx.Save(&m).Error; err != nil {
		log.Println("[ERROR] Save:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update skill")
	}

	helper.InvalidateCache(cacheKeySkills)
	return helper.JsonUpdated(c, "Skill updated", dto.NewSkillResponse(&m))
}

/* ===========================================================
 * Auth: DELETE /api/skills/:id (hard delete)
 * =========================================================== */
func (ctl *SkillController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		Delete(&model.SkillModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to delete skill")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Skill not found")
	}

	helper.InvalidateCache(cacheKeySkills)
	return helper.JsonDeleted(c, "Skill deleted", fiber.Map{"id": id})
}
