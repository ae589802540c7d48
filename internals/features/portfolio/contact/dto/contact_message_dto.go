// file: internals/features/portfolio/contact/dto/contact_message_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "portfolioku_backend/internals/features/portfolio/contact/model"
)

/* =========================
 * Validator instance
 * ========================= */
var validate = validator.New()

/* =========================
 * Request DTO
 * ========================= */

type CreateContactMessageDTO struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (d *CreateContactMessageDTO) Sanitize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Subject = strings.TrimSpace(d.Subject)
}

func (d *CreateContactMessageDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CreateContactMessageDTO) ToModel() *model.ContactMessageModel {
	return &model.ContactMessageModel{
		Name:    d.Name,
		Email:   d.Email,
		Subject: d.Subject,
		Message: d.Message,
	}
}

/* =========================
 * Response DTO
 * ========================= */

type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt string    `json:"created_at"`
}

func NewContactMessageResponse(m *model.ContactMessageModel) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt.UTC().Format(timeRFC3339),
	}
}

/* =========================
 * Common time format
 * ========================= */

const timeRFC3339 = "2006-01-02T15:04:05Z07:00"

// BindCreate: grab JSON, sanitize, validate
func BindCreate(c *fiber.Ctx) (*CreateContactMessageDTO, error) {
	var body CreateContactMessageDTO
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	body.Sanitize()
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}
