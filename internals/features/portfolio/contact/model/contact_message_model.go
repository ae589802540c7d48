// file: internals/features/portfolio/contact/model/contact_message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel represents the contact_messages table (public intake,
// read by the admin).
type ContactMessageModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email"`
	Subject string `gorm:"type:varchar(200);not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null;index" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
