// file: internals/features/portfolio/timeline/dto/education_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "portfolioku_backend/internals/features/portfolio/timeline/model"
)

/* =========================
 * Request DTO
 * ========================= */

// POST (Create)
type CreateEducationDTO struct {
	School      string  `json:"school" validate:"required,max=150"`
	Degree      string  `json:"degree" validate:"required,max=150"`
	Field       string  `json:"field" validate:"required,max=150"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date" validate:"omitempty"`
	Current     bool    `json:"current"`
	Description *string `json:"description" validate:"omitempty"`
	GPA         *string `json:"gpa" validate:"omitempty,max=20"`
}

func (d *CreateEducationDTO) Sanitize() {
	d.School = strings.TrimSpace(d.School)
	d.Degree = strings.TrimSpace(d.Degree)
	d.Field = strings.TrimSpace(d.Field)
	if d.Current {
		d.EndDate = nil
	}
}

func (d *CreateEducationDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CreateEducationDTO) ToModel() (*model.EducationModel, error) {
	start, err := ParseDate(d.StartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if !d.Current && d.EndDate != nil && strings.TrimSpace(*d.EndDate) != "" {
		t, err := ParseDate(*d.EndDate)
		if err != nil {
			return nil, err
		}
		end = &t
	}
	return &model.EducationModel{
		School:      d.School,
		Degree:      d.Degree,
		Field:       d.Field,
		StartDate:   start,
		EndDate:     end,
		Current:     d.Current,
		Description: d.Description,
		GPA:         d.GPA,
	}, nil
}

// PUT (Partial Update)
type UpdateEducationDTO struct {
	School      *string `json:"school" validate:"omitempty,max=150"`
	Degree      *string `json:"degree" validate:"omitempty,max=150"`
	Field       *string `json:"field" validate:"omitempty,max=150"`
	StartDate   *string `json:"start_date" validate:"omitempty"`
	EndDate     *string `json:"end_date" validate:"omitempty"`
	Current     *bool   `json:"current"`
	Description *string `json:"description" validate:"omitempty"`
	GPA         *string `json:"gpa" validate:"omitempty,max=20"`
}

func (d *UpdateEducationDTO) Validate() error {
	return validate.Struct(d)
}

// ApplyToModelPartial: only overwrite fields that are != nil,
// then re-assert the current/end-date invariant on the merged record.
func (d *UpdateEducationDTO) ApplyToModelPartial(m *model.EducationModel) error {
	if d.School != nil {
		m.School = strings.TrimSpace(*d.School)
	}
	if d.Degree != nil {
		m.Degree = strings.TrimSpace(*d.Degree)
	}
	if d.Field != nil {
		m.Field = strings.TrimSpace(*d.Field)
	}
	if d.StartDate != nil {
		t, err := ParseDate(*d.StartDate)
		if err != nil {
			return err
		}
		m.StartDate = t
	}
	if d.EndDate != nil {
		if strings.TrimSpace(*d.EndDate) == "" {
			m.EndDate = nil
		} else {
			t, err := ParseDate(*d.EndDate)
			if err != nil {
				return err
			}
			m.EndDate = &t
		}
	}
	if d.Current != nil {
		m.Current = *d.Current
	}
	if d.Description != nil {
		m.Description = d.Description
	}
	if d.GPA != nil {
		m.GPA = d.GPA
	}
	if m.Current {
		m.EndDate = nil
	}
	return nil
}

/* =========================
 * Response DTO
 * ========================= */

type EducationResponse struct {
	ID          uuid.UUID `json:"id"`
	School      string    `json:"school"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date,omitempty"`
	Current     bool      `json:"current"`
	Description *string   `json:"description,omitempty"`
	GPA         *string   `json:"gpa,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   *string   `json:"updated_at,omitempty"`
}

func NewEducationResponse(m *model.EducationModel) EducationResponse {
	var end, updatedAt *string
	if m.EndDate != nil {
		s := m.EndDate.UTC().Format(dateOnly)
		end = &s
	}
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return EducationResponse{
		ID:          m.ID,
		School:      m.School,
		Degree:      m.Degree,
		Field:       m.Field,
		StartDate:   m.StartDate.UTC().Format(dateOnly),
		EndDate:     end,
		Current:     m.Current,
		Description: m.Description,
		GPA:         m.GPA,
		CreatedAt:   m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt:   updatedAt,
	}
}

// BindCreateEducation: grab JSON, sanitize, validate
func BindCreateEducation(c *fiber.Ctx) (*CreateEducationDTO, error) {
	var body CreateEducationDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}

// BindUpdateEducation: grab JSON, validate
func BindUpdateEducation(c *fiber.Ctx) (*UpdateEducationDTO, error) {
	var body UpdateEducationDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
