// file: internals/features/portfolio/social_links/dto/social_link_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "portfolioku_backend/internals/features/portfolio/social_links/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

// POST (Create)
type CreateSocialLinkDTO struct {
	Platform string `json:"platform" validate:"required,max=50"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon" validate:"required,max=100"`
	Order    int    `json:"order" validate:"omitempty,min=0"`
}

func (d *CreateSocialLinkDTO) Sanitize() {
	d.Platform = strings.TrimSpace(d.Platform)
	d.Icon = strings.TrimSpace(d.Icon)
}

func (d *CreateSocialLinkDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CreateSocialLinkDTO) ToModel() *model.SocialLinkModel {
	return &model.SocialLinkModel{
		Platform:     d.Platform,
		URL:          d.URL,
		Icon:         d.Icon,
		DisplayOrder: d.Order,
	}
}

// PUT (Partial Update)
type UpdateSocialLinkDTO struct {
	Platform *string `json:"platform" validate:"omitempty,max=50"`
	URL      *string `json:"url" validate:"omitempty,url"`
	Icon     *string `json:"icon" validate:"omitempty,max=100"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
}

func (d *UpdateSocialLinkDTO) Validate() error {
	return validate.Struct(d)
}

// ApplyToModelPartial: only overwrite fields that are != nil
func (d *UpdateSocialLinkDTO) ApplyToModelPartial(m *model.SocialLinkModel) {
	if d.Platform != nil {
		m.Platform = strings.TrimSpace(*d.Platform)
	}
	if d.URL != nil {
		m.URL = *d.URL
	}
	if d.Icon != nil {
		m.Icon = strings.TrimSpace(*d.Icon)
	}
	if d.Order != nil {
		m.DisplayOrder = *d.Order
	}
}

/* =========================
 * Response DTO
 * ========================= */

type SocialLinkResponse struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Order     int       `json:"order"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt *string   `json:"updated_at,omitempty"`
}

func NewSocialLinkResponse(m *model.SocialLinkModel) SocialLinkResponse {
	var updatedAt *string
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return SocialLinkResponse{
		ID:        m.ID,
		Platform:  m.Platform,
		URL:       m.URL,
		Icon:      m.Icon,
		Order:     m.DisplayOrder,
		CreatedAt: m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt: updatedAt,
	}
}

/* =========================
 * Common time format
 * ========================= */

const timeRFC3339 = "2006-01-02T15:04:05Z07:00"

// BindCreate: grab JSON, sanitize, validate
func BindCreate(c *fiber.Ctx) (*CreateSocialLinkDTO, error) {
	var body CreateSocialLinkDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}

// BindUpdate: grab JSON, validate
func BindUpdate(c *fiber.Ctx) (*UpdateSocialLinkDTO, error) {
	var body UpdateSocialLinkDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
