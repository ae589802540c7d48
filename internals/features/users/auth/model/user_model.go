// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table (the single admin account).
type UserModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email    string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Password string  `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
	Name     *string `gorm:"type:varchar(100)" json:"name,omitempty"`

	// Timestamps
	CreatedAt time.Time  `gorm:"type:timestamptz;not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamptz" json:"updated_at"`
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName override
func (UserModel) TableName() string {
	return "users"
}
