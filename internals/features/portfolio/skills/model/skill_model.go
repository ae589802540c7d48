// file: internals/features/portfolio/skills/model/skill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillModel represents the skills table. Names are intentionally not unique,
// duplicates are the admin's responsibility.
type SkillModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Category    string `gorm:"type:varchar(100);not null;index" json:"category"`
	Proficiency int    `gorm:"not null" json:"proficiency"` // 1..100
	Icon        string `gorm:"type:varchar(100);not null" json:"icon"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *SkillModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (SkillModel) TableName() string {
	return "skills"
}
