// file: internals/features/portfolio/timeline/model/education_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EducationModel represents the educations table.
// Same Current/EndDate invariant as ExperienceModel.
type EducationModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	School      string     `gorm:"type:varchar(150);not null" json:"school"`
	Degree      string     `gorm:"type:varchar(150);not null" json:"degree"`
	Field       string     `gorm:"type:varchar(150);not null" json:"field"`
	StartDate   time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Current     bool       `gorm:"not null;default:false" json:"current"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	GPA         *string    `gorm:"type:varchar(20)" json:"gpa,omitempty"` // free-form, not numeric-validated

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *EducationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (EducationModel) TableName() string {
	return "educations"
}
