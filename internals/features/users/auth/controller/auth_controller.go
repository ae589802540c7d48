// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolioku_backend/internals/configs"
	"portfolioku_backend/internals/features/users/auth/dto"
	"portfolioku_backend/internals/features/users/auth/model"
	helper "portfolioku_backend/internals/helpers"
	seeds "portfolioku_backend/internals/seeds"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===========================================================
 * Public: POST /api/auth/login
 * =========================================================== */
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	body, err := dto.BindLogin(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("email = ?", body.Email).
		First(&m).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(body.Password)); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": m.ID.String(),
		"email":   m.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] sign token:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login success", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		User:        dto.NewUserResponse(&m),
	})
}

/* ===========================================================
 * Public: POST /api/auth/logout
 * =========================================================== */
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

/* ===========================================================
 * Auth: GET /api/auth/me
 * =========================================================== */
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", userID).
		First(&m).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Success get user", dto.NewUserResponse(&m))
}

/* ===========================================================
 * Auth: POST /api/auth/change-password
 * =========================================================== */
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	body, err := dto.BindChangePassword(c)
	if err != nil {
		return helper.JsonBindError(c, err)
	}

	var m model.UserModel
	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Where("id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] DB:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "DB error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(body.CurrentPassword)); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), 12)
	if err != nil {
		log.Println("[ERROR] bcrypt:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to hash password")
	}

	m.Password = string(hashed)
	if err := tx.Save(&m).Error; err != nil {
		log.Println("[ERROR] Save:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password updated", nil)
}

/* ===========================================================
 * Public: GET /api/setup (idempotent admin bootstrap)
 * =========================================================== */
func (ctl *AuthController) Setup(c *fiber.Ctx) error {
	if err := seeds.EnsureAdminUser(ctl.DB.WithContext(c.Context())); err != nil {
		log.Println("[ERROR] setup:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Setup failed")
	}
	return helper.JsonOK(c, "Setup completed successfully", nil)
}
