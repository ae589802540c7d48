// file: internals/features/portfolio/profile/model/profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SingletonID is the fixed, well-known key the one Profile row lives under.
// Upserting by this key keeps concurrent admin saves idempotent (no
// check-then-write race).
var SingletonID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// ProfileModel represents the profile table (exactly one row).
type ProfileModel struct {
	// PK (always SingletonID)
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Role         string  `gorm:"type:varchar(100);not null" json:"role"`
	Bio          string  `gorm:"type:text;not null" json:"bio"`
	ShortBio     string  `gorm:"type:text;not null" json:"short_bio"`
	Location     string  `gorm:"type:varchar(100);not null" json:"location"`
	ProfileImage string  `gorm:"type:text;not null" json:"profile_image"`
	ResumeURL    *string `gorm:"type:text" json:"resume_url,omitempty"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = SingletonID
	}
	return nil
}

// TableName override
func (ProfileModel) TableName() string {
	return "profile"
}
