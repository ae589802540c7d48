// file: internals/features/portfolio/timeline/dto/experience_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "portfolioku_backend/internals/features/portfolio/timeline/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Helpers
 * ========================= */

// ParseDate accepts both plain dates and full RFC3339 timestamps
// (the admin form sends plain dates, older clients sent timestamps).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

/* =========================
 * Request DTO
 * ========================= */

// POST (Create)
type CreateExperienceDTO struct {
	Company      string   `json:"company" validate:"required,max=150"`
	Role         string   `json:"role" validate:"required,max=150"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      *string  `json:"end_date" validate:"omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description" validate:"required"`
	Location     *string  `json:"location" validate:"omitempty,max=150"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,max=60"`
}

func (d *CreateExperienceDTO) Sanitize() {
	d.Company = strings.TrimSpace(d.Company)
	d.Role = strings.TrimSpace(d.Role)
	// current roles never keep an end date, whatever was submitted
	if d.Current {
		d.EndDate = nil
	}
}

func (d *CreateExperienceDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CreateExperienceDTO) ToModel() (*model.ExperienceModel, error) {
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
	return &model.ExperienceModel{
		Company:      d.Company,
		Role:         d.Role,
		StartDate:    start,
		EndDate:      end,
		Current:      d.Current,
		Description:  d.Description,
		Location:     d.Location,
		Technologies: datatypes.NewJSONSlice(d.Technologies),
	}, nil
}

// PUT (Partial Update)
type UpdateExperienceDTO struct {
	Company      *string   `json:"company" validate:"omitempty,max=150"`
	Role         *string   `json:"role" validate:"omitempty,max=150"`
	StartDate    *string   `json:"start_date" validate:"omitempty"`
	EndDate      *string   `json:"end_date" validate:"omitempty"`
	Current      *bool     `json:"current"`
	Description  *string   `json:"description" validate:"omitempty"`
	Location     *string   `json:"location" validate:"omitempty,max=150"`
	Technologies *[]string `json:"technologies" validate:"omitempty,dive,max=60"`
}

func (d *UpdateExperienceDTO) Validate() error {
	return validate.Struct(d)
}

// ApplyToModelPartial: only overwrite fields that are != nil,
// then re-assert the current/end-date invariant on the merged record.
func (d *UpdateExperienceDTO) ApplyToModelPartial(m *model.ExperienceModel) error {
	if d.Company != nil {
		m.Company = strings.TrimSpace(*d.Company)
	}
	if d.Role != nil {
		m.Role = strings.TrimSpace(*d.Role)
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
		m.Description = *d.Description
	}
	if d.Location != nil {
		m.Location = d.Location
	}
	if d.Technologies != nil {
		m.Technologies = datatypes.NewJSONSlice(*d.Technologies)
	}
	if m.Current {
		m.EndDate = nil
	}
	return nil
}

/* =========================
 * Response DTO
 * ========================= */

type ExperienceResponse struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description"`
	Location     *string   `json:"location,omitempty"`
	Technologies []string  `json:"technologies"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    *string   `json:"updated_at,omitempty"`
}

func NewExperienceResponse(m *model.ExperienceModel) ExperienceResponse {
	var end, updatedAt *string
	if m.EndDate != nil {
		s := m.EndDate.UTC().Format(dateOnly)
		end = &s
	}
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return ExperienceResponse{
		ID:           m.ID,
		Company:      m.Company,
		Role:         m.Role,
		StartDate:    m.StartDate.UTC().Format(dateOnly),
		EndDate:      end,
		Current:      m.Current,
		Description:  m.Description,
		Location:     m.Location,
		Technologies: []string(m.Technologies),
		CreatedAt:    m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt:    updatedAt,
	}
}

/* =========================
 * Common time formats
 * ========================= */

const (
	timeRFC3339 = "2006-01-02T15:04:05Z07:00"
	dateOnly    = "2006-01-02"
)

// BindCreateExperience: grab JSON, sanitize, validate
func BindCreateExperience(c *fiber.Ctx) (*CreateExperienceDTO, error) {
	var body CreateExperienceDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}

// BindUpdateExperience: grab JSON, validate
func BindUpdateExperience(c *fiber.Ctx) (*UpdateExperienceDTO, error) {
	var body UpdateExperienceDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
