// file: internals/features/portfolio/skills/dto/skill_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "portfolioku_backend/internals/features/portfolio/skills/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

// POST (Create)
type CreateSkillDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Proficiency int    `json:"proficiency" validate:"required,min=1,max=100"`
	Icon        string `json:"icon" validate:"required,max=100"`
}

func (d *CreateSkillDTO) Sanitize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	d.Icon = strings.TrimSpace(d.Icon)
}

func (d *CreateSkillDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CreateSkillDTO) ToModel() *model.SkillModel {
	return &model.SkillModel{
		Name:        d.Name,
		Category:    d.Category,
		Proficiency: d.Proficiency,
		Icon:        d.Icon,
	}
}

// PUT (Partial Update)
type UpdateSkillDTO struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Proficiency *int    `json:"proficiency" validate:"omitempty,min=1,max=100"`
	Icon        *string `json:"icon" validate:"omitempty,max=100"`
}

func (d *UpdateSkillDTO) Sanitize() {
	if d.Name != nil {
		v := strings.TrimSpace(*d.Name)
		d.Name = &v
	}
	if d.Category != nil {
		v := strings.TrimSpace(*d.Category)
		d.Category = &v
	}
	if d.Icon != nil {
		v := strings.TrimSpace(*d.Icon)
		d.Icon = &v
	}
}

func (d *UpdateSkillDTO) Validate() error {
	return validate.Struct(d)
}

// ApplyToModelPartial: only overwrite fields that are != nil
func (d *UpdateSkillDTO) ApplyToModelPartial(m *model.SkillModel) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.Category != nil {
		m.Category = *d.Category
	}
	if d.Proficiency != nil {
		m.Proficiency = *d.Proficiency
	}
	if d.Icon != nil {
		m.Icon = *d.Icon
	}
}

/* =========================
 * Response DTO
 * ========================= */

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	Icon        string    `json:"icon"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   *string   `json:"updated_at,omitempty"`
}

func NewSkillResponse(m *model.SkillModel) SkillResponse {
	var updatedAt *string
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return SkillResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Proficiency: m.Proficiency,
		Icon:        m.Icon,
		CreatedAt:   m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt:   updatedAt,
	}
}

/* =========================
 * Common time format
 * ========================= */

const timeRFC3339 = "2006-01-02T15:04:05Z07:00"

// BindCreate: grab JSON, sanitize, validate
func BindCreate(c *fiber.Ctx) (*CreateSkillDTO, error) {
	var body CreateSkillDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}

// BindUpdate: grab JSON, sanitize, validate
func BindUpdate(c *fiber.Ctx) (*UpdateSkillDTO, error) {
	var body UpdateSkillDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
