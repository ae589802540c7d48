// file: internals/features/portfolio/profile/dto/profile_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "portfolioku_backend/internals/features/portfolio/profile/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

// SaveProfileDTO covers both first save and every later save (upsert).
type SaveProfileDTO struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Role         string  `json:"role" validate:"required,max=100"`
	Bio          string  `json:"bio" validate:"required"`
	ShortBio     string  `json:"short_bio" validate:"required"`
	Location     string  `json:"location" validate:"required,max=100"`
	ProfileImage string  `json:"profile_image" validate:"required,url"`
	ResumeURL    *string `json:"resume_url" validate:"omitempty,url"`
}

func (d *SaveProfileDTO) Sanitize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Role = strings.TrimSpace(d.Role)
	d.Location = strings.TrimSpace(d.Location)
	if d.ResumeURL != nil {
		v := strings.TrimSpace(*d.ResumeURL)
		if v == "" {
			d.ResumeURL = nil
		} else {
			d.ResumeURL = &v
		}
	}
}

func (d *SaveProfileDTO) Validate() error {
	return validate.Struct(d)
}

func (d *SaveProfileDTO) ToModel() *model.ProfileModel {
	return &model.ProfileModel{
		ID:           model.SingletonID,
		Name:         d.Name,
		Role:         d.Role,
		Bio:          d.Bio,
		ShortBio:     d.ShortBio,
		Location:     d.Location,
		ProfileImage: d.ProfileImage,
		ResumeURL:    d.ResumeURL,
	}
}

/* =========================
 * Response DTO
 * ========================= */

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio"`
	ShortBio     string    `json:"short_bio"`
	Location     string    `json:"location"`
	ProfileImage string    `json:"profile_image"`
	ResumeURL    *string   `json:"resume_url,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    *string   `json:"updated_at,omitempty"`
}

func NewProfileResponse(m *model.ProfileModel) ProfileResponse {
	var updatedAt *string
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return ProfileResponse{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Bio:          m.Bio,
		ShortBio:     m.ShortBio,
		Location:     m.Location,
		ProfileImage: m.ProfileImage,
		ResumeURL:    m.ResumeURL,
		CreatedAt:    m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt:    updatedAt,
	}
}

/* =========================
 * Common time format
 * ========================= */

const timeRFC3339 = "2006-01-02T15:04:05Z07:00"

// BindSave: grab JSON, sanitize, validate
func BindSave(c *fiber.Ctx) (*SaveProfileDTO, error) {
	var body SaveProfileDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
