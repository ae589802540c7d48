// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "portfolioku_backend/internals/features/users/auth/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (d *LoginDTO) Sanitize() {
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
}

func (d *LoginDTO) Validate() error {
	return validate.Struct(d)
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (d *ChangePasswordDTO) Validate() error {
	return validate.Struct(d)
}

/* =========================
 * Response DTO
 * ========================= */

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  *string   `json:"name,omitempty"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:    m.ID,
		Email: m.Email,
		Name:  m.Name,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}

/* =========================
 * Bind helpers
 * ========================= */

func BindLogin(c *fiber.Ctx) (*LoginDTO, error) {
	var body LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}

func BindChangePassword(c *fiber.Ctx) (*ChangePasswordDTO, error) {
	var body ChangePasswordDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
