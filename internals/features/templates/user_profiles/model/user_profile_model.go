// file: internals/features/templates/user_profiles/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolioku_backend/internals/features/templates/registry"
)

// LayoutFlags toggle optional sections in the layouts.
type LayoutFlags struct {
	ShowBlog           bool `json:"show_blog"`
	ShowTestimonials   bool `json:"show_testimonials"`
	ShowCertifications bool `json:"show_certifications"`
}

// Customizations is the per-tenant look override stored as one JSON document.
type Customizations struct {
	ColorScheme registry.ColorScheme `json:"color_scheme"`
	Layout      LayoutFlags          `json:"layout"`
}

type SEOSettings struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// UserProfileModel represents the user_profiles table: the only genuinely
// multi-tenant record (how should this tenant's site look).
type UserProfileModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID           uuid.UUID                              `gorm:"type:uuid;not null;uniqueIndex:uq_user_profiles_user" json:"user_id"`
	Username         string                                 `gorm:"type:varchar(100);not null;uniqueIndex:uq_user_profiles_username" json:"username"`
	SelectedTemplate string                                 `gorm:"type:varchar(30);not null;default:'developer'" json:"selected_template"`
	Customizations   datatypes.JSONType[Customizations]     `json:"customizations"`
	SEOSettings      datatypes.JSONType[SEOSettings]        `gorm:"column:seo_settings" json:"seo_settings"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// NewDefault builds the lazily-created tenant record. Colors come from the
// registry's developer entry so there is a single source of truth.
func NewDefault(userID uuid.UUID, username string) *UserProfileModel {
	def := registry.Default()
	return &UserProfileModel{
		UserID:           userID,
		Username:         username,
		SelectedTemplate: string(def.ID),
		Customizations: datatypes.NewJSONType(Customizations{
			ColorScheme: def.ColorScheme,
			Layout:      LayoutFlags{}, // all sections off by default
		}),
		SEOSettings: datatypes.NewJSONType(SEOSettings{
			Title:       "Professional Portfolio",
			Description: "Welcome to my professional portfolio",
			Keywords:    []string{},
		}),
	}
}
