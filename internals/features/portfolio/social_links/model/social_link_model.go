// file: internals/features/portfolio/social_links/model/social_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLinkModel represents the social_links table. DisplayOrder controls the
// public sequence; ties fall back to store order.
type SocialLinkModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Platform     string `gorm:"type:varchar(50);not null" json:"platform"`
	URL          string `gorm:"type:text;not null" json:"url"`
	Icon         string `gorm:"type:varchar(100);not null" json:"icon"`
	DisplayOrder int    `gorm:"column:display_order;not null;default:0;index" json:"order"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *SocialLinkModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (SocialLinkModel) TableName() string {
	return "social_links"
}
