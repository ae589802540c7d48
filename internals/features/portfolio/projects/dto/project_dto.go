// file: internals/features/portfolio/projects/dto/project_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "portfolioku_backend/internals/features/portfolio/projects/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

// POST (Create)
type CreateProjectDTO struct {
	Title           string   `json:"title" validate:"required,max=150"`
	Description     string   `json:"description" validate:"required"`
	DetailedContent string   `json:"detailed_content" validate:"required"`
	Image           string   `json:"image" validate:"required,url"`
	Images          []string `json:"images" validate:"omitempty,dive,url"`
	Technologies    []string `json:"technologies" validate:"omitempty,dive,max=60"`
	GithubURL       *string  `json:"github_url" validate:"omitempty,url"`
	LiveURL         *string  `json:"live_url" validate:"omitempty,url"`
	Featured        bool     `json:"featured"`
	Status          string   `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
}

func (d *CreateProjectDTO) Sanitize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Status = strings.TrimSpace(d.Status)
	if d.Status == "" {
		d.Status = model.StatusCompleted
	}
}

func (d *CreateProjectDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CreateProjectDTO) ToModel() *model.ProjectModel {
	return &model.ProjectModel{
		Title:           d.Title,
		Description:     d.Description,
		DetailedContent: d.DetailedContent,
		Image:           d.Image,
		Images:          datatypes.NewJSONSlice(d.Images),
		Technologies:    datatypes.NewJSONSlice(d.Technologies),
		GithubURL:       d.GithubURL,
		LiveURL:         d.LiveURL,
		Featured:        d.Featured,
		Status:          d.Status,
	}
}

// PUT (Partial Update)
type UpdateProjectDTO struct {
	Title           *string   `json:"title" validate:"omitempty,max=150"`
	Description     *string   `json:"description" validate:"omitempty"`
	DetailedContent *string   `json:"detailed_content" validate:"omitempty"`
	Image           *string   `json:"image" validate:"omitempty,url"`
	Images          *[]string `json:"images" validate:"omitempty,dive,url"`
	Technologies    *[]string `json:"technologies" validate:"omitempty,dive,max=60"`
	GithubURL       *string   `json:"github_url" validate:"omitempty,url"`
	LiveURL         *string   `json:"live_url" validate:"omitempty,url"`
	Featured        *bool     `json:"featured"`
	Status          *string   `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
}

func (d *UpdateProjectDTO) Validate() error {
	return validate.Struct(d)
}

// ApplyToModelPartial: only overwrite fields that are != nil
func (d *UpdateProjectDTO) ApplyToModelPartial(m *model.ProjectModel) {
	if d.Title != nil {
		m.Title = strings.TrimSpace(*d.Title)
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
	if d.DetailedContent != nil {
		m.DetailedContent = *d.DetailedContent
	}
	if d.Image != nil {
		m.Image = *d.Image
	}
	if d.Images != nil {
		m.Images = datatypes.NewJSONSlice(*d.Images)
	}
	if d.Technologies != nil {
		m.Technologies = datatypes.NewJSONSlice(*d.Technologies)
	}
	if d.GithubURL != nil {
		m.GithubURL = d.GithubURL
	}
	if d.LiveURL != nil {
		m.LiveURL = d.LiveURL
	}
	if d.Featured != nil {
		m.Featured = *d.Featured
	}
	if d.Status != nil {
		m.Status = *d.Status
	}
}

/* =========================
 * Response DTO
 * ========================= */

type ProjectResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DetailedContent string    `json:"detailed_content"`
	Image           string    `json:"image"`
	Images          []string  `json:"images"`
	Technologies    []string  `json:"technologies"`
	GithubURL       *string   `json:"github_url,omitempty"`
	LiveURL         *string   `json:"live_url,omitempty"`
	Featured        bool      `json:"featured"`
	Status          string    `json:"status"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       *string   `json:"updated_at,omitempty"`
}

func NewProjectResponse(m *model.ProjectModel) ProjectResponse {
	var updatedAt *string
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return ProjectResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DetailedContent: m.DetailedContent,
		Image:           m.Image,
		Images:          []string(m.Images),
		Technologies:    []string(m.Technologies),
		GithubURL:       m.GithubURL,
		LiveURL:         m.LiveURL,
		Featured:        m.Featured,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt:       updatedAt,
	}
}

/* =========================
 * Common time format
 * ========================= */

const timeRFC3339 = "2006-01-02T15:04:05Z07:00"

// BindCreate: grab JSON, sanitize, validate
func BindCreate(c *fiber.Ctx) (*CreateProjectDTO, error) {
	var body CreateProjectDTO
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
func BindUpdate(c *fiber.Ctx) (*UpdateProjectDTO, error) {
	var body UpdateProjectDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
