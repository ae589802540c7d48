// file: internals/features/templates/user_profiles/dto/user_profile_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "portfolioku_backend/internals/features/templates/user_profiles/model"
	"portfolioku_backend/internals/features/templates/registry"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

type ColorSchemeDTO struct {
	Primary   string `json:"primary" validate:"required,hexcolor"`
	Secondary string `json:"secondary" validate:"required,hexcolor"`
	Accent    string `json:"accent" validate:"required,hexcolor"`
}

type LayoutFlagsDTO struct {
	ShowBlog           bool `json:"show_blog"`
	ShowTestimonials   bool `json:"show_testimonials"`
	ShowCertifications bool `json:"show_certifications"`
}

type CustomizationsDTO struct {
	ColorScheme *ColorSchemeDTO `json:"color_scheme" validate:"omitempty"`
	Layout      LayoutFlagsDTO  `json:"layout"`
}

type SEOSettingsDTO struct {
	Title       string   `json:"title" validate:"omitempty,max=150"`
	Description string   `json:"description" validate:"omitempty,max=300"`
	Keywords    []string `json:"keywords" validate:"omitempty,dive,max=50"`
}

// UpdateUserProfileDTO: POST /api/user-profile (shallow-merge upsert).
// A submitted top-level field replaces the stored value wholesale; omitted
// top-level fields are left alone.
type UpdateUserProfileDTO struct {
	SelectedTemplate *string            `json:"selected_template" validate:"omitempty,max=30"`
	Username         *string            `json:"username" validate:"omitempty,min=3,max=100,alphanum"`
	Customizations   *CustomizationsDTO `json:"customizations" validate:"omitempty"`
	SEOSettings      *SEOSettingsDTO    `json:"seo_settings" validate:"omitempty"`
}

func (d *UpdateUserProfileDTO) Sanitize() {
	if d.SelectedTemplate != nil {
		v := strings.TrimSpace(*d.SelectedTemplate)
		d.SelectedTemplate = &v
	}
	if d.Username != nil {
		v := strings.ToLower(strings.TrimSpace(*d.Username))
		d.Username = &v
	}
}

func (d *UpdateUserProfileDTO) Validate() error {
	return validate.Struct(d)
}

// ApplyToModel replaces submitted top-level fields on the record.
// Customizations without a color scheme fall back to the selected template's
// registry default instead of leaving a torn object.
func (d *UpdateUserProfileDTO) ApplyToModel(m *model.UserProfileModel) {
	if d.SelectedTemplate != nil {
		m.SelectedTemplate = *d.SelectedTemplate
	}
	if d.Username != nil {
		m.Username = *d.Username
	}
	if d.Customizations != nil {
		cust := model.Customizations{
			Layout: model.LayoutFlags{
				ShowBlog:           d.Customizations.Layout.ShowBlog,
				ShowTestimonials:   d.Customizations.Layout.ShowTestimonials,
				ShowCertifications: d.Customizations.Layout.ShowCertifications,
			},
		}
		if d.Customizations.ColorScheme != nil {
			cust.ColorScheme = registry.ColorScheme{
				Primary:   d.Customizations.ColorScheme.Primary,
				Secondary: d.Customizations.ColorScheme.Secondary,
				Accent:    d.Customizations.ColorScheme.Accent,
			}
		} else if t, ok := registry.Lookup(registry.TemplateID(m.SelectedTemplate)); ok {
			cust.ColorScheme = t.ColorScheme
		} else {
			cust.ColorScheme = registry.Default().ColorScheme
		}
		m.Customizations = datatypes.NewJSONType(cust)
	}
	if d.SEOSettings != nil {
		kw := d.SEOSettings.Keywords
		if kw == nil {
			kw = []string{}
		}
		m.SEOSettings = datatypes.NewJSONType(model.SEOSettings{
			Title:       d.SEOSettings.Title,
			Description: d.SEOSettings.Description,
			Keywords:    kw,
		})
	}
}

/* =========================
 * Response DTO
 * ========================= */

type UserProfileResponse struct {
	ID               uuid.UUID            `json:"id"`
	UserID           uuid.UUID            `json:"user_id"`
	Username         string               `json:"username"`
	SelectedTemplate string               `json:"selected_template"`
	Customizations   model.Customizations `json:"customizations"`
	SEOSettings      model.SEOSettings    `json:"seo_settings"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        *string              `json:"updated_at,omitempty"`
}

func NewUserProfileResponse(m *model.UserProfileModel) UserProfileResponse {
	var updatedAt *string
	if m.UpdatedAt != nil {
		s := m.UpdatedAt.UTC().Format(timeRFC3339)
		updatedAt = &s
	}
	return UserProfileResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		Username:         m.Username,
		SelectedTemplate: m.SelectedTemplate,
		Customizations:   m.Customizations.Data(),
		SEOSettings:      m.SEOSettings.Data(),
		CreatedAt:        m.CreatedAt.UTC().Format(timeRFC3339),
		UpdatedAt:        updatedAt,
	}
}

/* =========================
 * Common time format
 * ========================= */

const timeRFC3339 = "2006-01-02T15:04:05Z07:00"

// BindUpdate: grab JSON, sanitize, validate
func BindUpdate(c *fiber.Ctx) (*UpdateUserProfileDTO, error) {
	var body UpdateUserProfileDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
