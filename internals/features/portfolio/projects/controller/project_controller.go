// file: internals/features/portfolio/projects/controller/project_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/portfolio/projects/dto"
	"portfolioku_backend/internals/features/portfolio/projects/model"
	helper "portfolioku_backend/internals/helpers"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

/* ===========================================================
 * Public: GET /api/projects (created_at DESC, optional paging)
 * =========================================================== */
func (ctl *ProjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.ProjectModel{})

	// ?featured=true narrows to the featured set (used by the home page)
	if c.QueryBool("featured", false) {
		tx = tx.Where("featured = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] Count:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	var ms []model.ProjectModel
	if err := tx.
		Order("created_at DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&ms).Error; err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	resp := make([]dto.ProjectResponse, 0, len(ms))
	for i := range ms {
		resp = append(resp, dto.NewProjectResponse(&ms[i]))
	}

	pagination := helper.BuildPagination(total, p, len(resp))
	return helper.JsonList(c, "Success get projects", resp, &pagination)
}

/* ===========================================================
 * Public: GET /api/projects/:id
 * =========================================================== */
func (ctl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	var m model.ProjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Project not found")
		}
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Success get project", dto.NewProjectResponse(&m))
}

/* ===========================================================
 * Auth: POST /api/projects
 * =========================================================== */
func (ctl *ProjectController) Create(c *fiber.Ctx) error {
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
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create project")
	}

	return helper.JsonCreated(c, "Project created", dto.NewProjectResponse(m))
}

/* ===========================================================
 * Auth: PUT /api/projects/:id
 * =========================================================== */
func (ctl *ProjectController) Update(c *fiber.Ctx) error {
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

	var m model.ProjectModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Project not found")
		}
		log.Println("[ERROR] DB First:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	body.ApplyToModelPartial(&m)
	now := time.Now()
	m.UpdatedAt = &now
	if err := tx.Save(&m).Error; err != nil {
		log.Println("[ERROR] Save:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update project")
	}

	return helper.JsonUpdated(c, "Project updated", dto.NewProjectResponse(&m))
}

/* ===========================================================
 * Auth: DELETE /api/projects/:id (hard delete)
 * =========================================================== */
func (ctl *ProjectController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to delete project")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Project not found")
	}

	return helper.JsonDeleted(c, "Project deleted", fiber.Map{"id": id})
}
