// file: internals/features/portfolio/projects/model/project_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project status enum
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusPlanned    = "planned"
)

// ProjectModel represents the projects table.
type ProjectModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Title           string                      `gorm:"type:varchar(150);not null" json:"title"`
	Description     string                      `gorm:"type:text;not null" json:"description"`
	DetailedContent string                      `gorm:"type:text;not null" json:"detailed_content"`
	Image           string                      `gorm:"type:text;not null" json:"image"`
	Images          datatypes.JSONSlice[string] `json:"images"` // gallery
	Technologies    datatypes.JSONSlice[string] `json:"technologies"`
	GithubURL       *string                     `gorm:"type:text" json:"github_url,omitempty"`
	LiveURL         *string                     `gorm:"type:text" json:"live_url,omitempty"`
	Featured        bool                        `gorm:"not null;default:false" json:"featured"`
	Status          string                      `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null;index" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (ProjectModel) TableName() string {
	return "projects"
}
