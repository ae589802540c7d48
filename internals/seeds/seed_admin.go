// file: internals/seeds/seed_admin.go
package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolioku_backend/internals/configs"
	userModel "portfolioku_backend/internals/features/users/auth/model"
)

// EnsureAdminUser creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD
// when it does not exist yet. Safe to call repeatedly.
func EnsureAdminUser(db *gorm.DB) error {
	email := configs.AdminEmail
	password := configs.AdminPassword
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL / ADMIN_PASSWORD not set")
	}

	var existing userModel.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("ℹ️ Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Admin user created")
	return nil
}
