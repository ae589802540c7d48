// file: internals/features/portfolio/contact/controller/contact_message_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/portfolio/contact/dto"
	"portfolioku_backend/internals/features/portfolio/contact/model"
	helper "portfolioku_backend/internals/helpers"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

/* ===========================================================
 * Public: POST /api/contact (rate-limited at the route)
 * =========================================================== */
func (ctl *ContactController) Create(c *fiber.Ctx) error {
	body, err := dto.BindCreate(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	m := body.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to send message")
	}

	// TODO: forward to an email provider once one is configured (SMTP/SES)
	log.Printf("[CONTACT] from=%s subject=%q", m.Email, m.Subject)

	return helper.JsonCreated(c, "Message sent successfully!", fiber.Map{"id": m.ID})
}

/* ===========================================================
 * Auth: GET /api/contact (newest first)
 * =========================================================== */
func (ctl *ContactController) List(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ms []model.ContactMessageModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	resp := make([]dto.ContactMessageResponse, 0, len(ms))
	for i := range ms {
		resp = append(resp, dto.NewContactMessageResponse(&ms[i]))
	}
	return helper.JsonList(c, "Success get messages", resp, nil)
}

/* ===========================================================
 * Auth: DELETE /api/contact/:id
 * =========================================================== */
func (ctl *ContactController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		Delete(&model.ContactMessageModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to delete message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Message not found")
	}

	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"id": id})
}
