// file: internals/features/portfolio/timeline/model/experience_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExperienceModel represents the experiences table.
// Invariant: Current == true implies EndDate IS NULL (enforced in the dto layer
// on every write path).
type ExperienceModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Company      string                      `gorm:"type:varchar(150);not null" json:"company"`
	Role         string                      `gorm:"type:varchar(150);not null" json:"role"`
	StartDate    time.Time                   `gorm:"type:date;not null;index" json:"start_date"`
	EndDate      *time.Time                  `gorm:"type:date" json:"end_date,omitempty"`
	Current      bool                        `gorm:"not null;default:false" json:"current"`
	Description  string                      `gorm:"type:text;not null" json:"description"`
	Location     *string                     `gorm:"type:varchar(150)" json:"location,omitempty"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *ExperienceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (ExperienceModel) TableName() string {
	return "experiences"
}
