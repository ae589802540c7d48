// file: internals/features/portfolio/social_links/controller/social_link_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/portfolio/social_links/dto"
	"portfolioku_backend/internals/features/portfolio/social_links/model"
	helper "portfolioku_backend/internals/helpers"
)

const cacheKeySocialLinks = "public:social_links"

type SocialLinkController struct {
	DB *gorm.DB
}

func NewSocialLinkController(db *gorm.DB) *SocialLinkController {
	return &SocialLinkController{DB: db}
}

/* ===========================================================
 * Public: GET /api/social-links (display_order ASC)
 * =========================================================== */
func (ctl *SocialLinkController) List(c *fiber.Ctx) error {
	data, err := helper.GetCached(cacheKeySocialLinks, func() (interface{}, error) {
		var ms []model.SocialLinkModel
		if err := ctl.DB.WithContext(c.Context()).
			Order("display_order ASC").
			Find(&ms).Error; err != nil {
			return nil, err
		}
		resp := make([]dto.SocialLinkResponse, 0, len(ms))
		for i := range ms {
			resp = append(resp, dto.NewSocialLinkResponse(&ms[i]))
		}
		return resp, nil
	})
	if err != nil {
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}
	return helper.JsonList(c, "Success get social links", data, nil)
}

/* ===========================================================
 * Auth: POST /api/social-links
 * =========================================================== */
func (ctl *SocialLinkController) Create(c *fiber.Ctx) error {
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
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to create social link")
	}

	helper.InvalidateCache(cacheKeySocialLinks)
	return helper.JsonCreated(c, "Social link created", dto.NewSocialLinkResponse(m))
}

/* ===========================================================
 * Auth: PUT /api/social-links/:id
 * =========================================================== */
func (ctl *SocialLinkController) Update(c *fiber.Ctx) error {
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

	var m model.SocialLinkModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Social link not found")
		}
		log.Println("[ERROR] DB First:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	body.ApplyToModelPartial(&m)
	now := time.Now()
	m.UpdatedAt = &now
	if err := tx.Save(&m).Error; err != nil {
		log.Println("[ERROR] Save:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update social link")
	}

	helper.InvalidateCache(cacheKeySocialLinks)
	return helper.JsonUpdated(c, "Social link updated", dto.NewSocialLinkResponse(&m))
}

/* ===========================================================
 * Auth: DELETE /api/social-links/:id (hard delete)
 * =========================================================== */
func (ctl *SocialLinkController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("id = ?", id).
		Delete(&model.SocialLinkModel{})
	if res.Error != nil {
		log.Println("[ERROR] Delete:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to delete social link")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Social link not found")
	}

	helper.InvalidateCache(cacheKeySocialLinks)
	return helper.JsonDeleted(c, "Social link deleted", fiber.Map{"id": id})
}
